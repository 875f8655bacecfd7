package linalg

import "github.com/ekera/quaspy/field"

// GramSchmidt returns (Bs, M) for an integer basis B, generic over the
// target element type T (Rational for exact projection factors, Float(p)
// for fixed-precision). M is
// lower-triangular with unit diagonal; Bs satisfies
// b_i* = b_i - sum_{j<i} mu_ij * b_j*.
func GramSchmidt[T field.Field[T]](B Matrix[field.Integer], ops field.Ops[T]) (Bs Matrix[T], M Matrix[T]) {
	n, d := B.Dims()
	bsRows := make([]Vector[T], n)
	mRows := make([]Vector[T], n)
	zero := ops.Zero()
	one := ops.One()

	toT := func(v Vector[field.Integer]) Vector[T] { return Convert(v, ops.FromInt) }

	for i := 0; i < n; i++ {
		bi := toT(B.Row(i))
		mu := make([]T, n)
		for k := range mu {
			mu[k] = zero
		}
		acc := bi
		for j := 0; j < i; j++ {
			num := Dot(bi, bsRows[j], zero)
			den := Dot(bsRows[j], bsRows[j], zero)
			muij := num.Div(den)
			mu[j] = muij
			acc = acc.Sub(bsRows[j].Scale(muij))
		}
		mu[i] = one
		bsRows[i] = acc
		mRows[i] = Vector[T]{e: mu}
		_ = d
	}
	return Matrix[T]{rows: bsRows}, Matrix[T]{rows: mRows}
}

// GramSchmidtExact returns exact-rational Gram-Schmidt data.
func GramSchmidtExact(B Matrix[field.Integer]) (Matrix[field.Rational], Matrix[field.Rational]) {
	return GramSchmidt(B, field.RationalOps())
}

// GramSchmidtFloat returns fixed-precision Gram-Schmidt data at the given
// binary precision.
func GramSchmidtFloat(B Matrix[field.Integer], precision uint) (Matrix[field.Float], Matrix[field.Float]) {
	return GramSchmidt(B, field.FloatOps(precision))
}
