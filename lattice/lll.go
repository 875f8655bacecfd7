package lattice

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/timeout"
)

// LLL delta-LLL-reduces the n x d integer basis A (n <= d, full rank
// assumed). delta and ops fix the element type T used for
// the projection factors (Rational for exact, Float(p) for fixed
// precision); delta must be expressed in that same type. Gram-Schmidt data
// is recomputed after each row update rather than patched incrementally —
// simpler to state correctly, and the termination/output guarantees
// do not depend on how (Bs,M) is recomputed.
func LLL[T field.Field[T]](A linalg.Matrix[field.Integer], delta T, ops field.Ops[T], t *timeout.Timeout) (linalg.Matrix[field.Integer], linalg.Matrix[T], linalg.Matrix[T], error) {
	n, _ := A.Dims()
	B := A
	if n == 0 {
		Bs, M := linalg.GramSchmidt(B, ops)
		return B, Bs, M, nil
	}
	zero := ops.Zero()
	k := 1
	for k < n {
		if err := t.Check(); err != nil {
			return linalg.Matrix[field.Integer]{}, linalg.Matrix[T]{}, linalg.Matrix[T]{}, err
		}
		Bs, M := linalg.GramSchmidt(B, ops)
		for j := k - 1; j >= 0; j-- {
			mu := M.Row(k).At(j)
			if !isSizeReduced(mu, ops) {
				q := ops.Round(mu)
				if !q.IsZero() {
					B = B.SetRow(k, B.Row(k).Sub(B.Row(j).Scale(q)))
					Bs, M = linalg.GramSchmidt(B, ops)
				}
			}
		}
		bks, bk1s := Bs.Row(k), Bs.Row(k-1)
		lhs := linalg.Dot(bks, bks, zero)
		muK := M.Row(k).At(k - 1)
		rhs := delta.Sub(muK.Mul(muK)).Mul(linalg.Dot(bk1s, bk1s, zero))
		if lhs.Cmp(rhs) >= 0 {
			k++
		} else {
			B = B.SwapRows(k, k-1)
			if k > 1 {
				k--
			}
		}
	}
	Bs, M := linalg.GramSchmidt(B, ops)
	return B, Bs, M, nil
}

// isSizeReduced reports |mu| <= 1/2 using the comparison 2*|mu| <= 1 in T.
func isSizeReduced[T field.Field[T]](mu T, ops field.Ops[T]) bool {
	two := ops.One().Add(ops.One())
	abs := mu
	if mu.Sign() < 0 {
		abs = mu.Neg()
	}
	return two.Mul(abs).Cmp(ops.One()) <= 0
}

// IsLLLReduced reports whether B is delta-LLL-reduced: size-reduction
// |mu_ij| <= 1/2 for all j<i, and the Lovász condition for every consecutive
// pair, both checked with exact rationals.
func IsLLLReduced(B linalg.Matrix[field.Integer], delta field.Rational) bool {
	n, _ := B.Dims()
	if n == 0 {
		return true
	}
	ops := field.RationalOps()
	Bs, M := linalg.GramSchmidt(B, ops)
	half := field.NewRatInt64(1, 2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			mu := M.Row(i).At(j)
			abs := mu
			if mu.Sign() < 0 {
				abs = mu.Neg()
			}
			if abs.Cmp(half) > 0 {
				return false
			}
		}
	}
	zero := field.NewRatInt64(0, 1)
	for i := 1; i < n; i++ {
		lhs := linalg.Dot(Bs.Row(i), Bs.Row(i), zero)
		mu := M.Row(i).At(i - 1)
		rhs := delta.Sub(mu.Mul(mu)).Mul(linalg.Dot(Bs.Row(i-1), Bs.Row(i-1), zero))
		if lhs.Cmp(rhs) < 0 {
			return false
		}
	}
	return true
}

// LLLExact reduces B using exact rational Gram-Schmidt data.
func LLLExact(B linalg.Matrix[field.Integer], delta field.Rational, t *timeout.Timeout) (linalg.Matrix[field.Integer], linalg.Matrix[field.Rational], linalg.Matrix[field.Rational], error) {
	return LLL(B, delta, field.RationalOps(), t)
}
