package lattice

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
)

// NearestPlane implements Babai's nearest-plane algorithm:
// given a delta-LLL-reduced n x d integer basis B and its Gram-Schmidt data
// (Bs, M), find a lattice vector close to the exact target t. Starting
// from t, for i from n down to 1 it subtracts
// round(<current, b_i*>/||b_i*||^2) * b_i, accumulating the integer
// combination of rows of B that is finally returned.
func NearestPlane[T field.Field[T]](B linalg.Matrix[field.Integer], Bs linalg.Matrix[T], target linalg.Vector[T], ops field.Ops[T]) linalg.Vector[field.Integer] {
	n, _ := B.Dims()
	if n == 0 {
		return linalg.Vector[field.Integer]{}
	}
	zero := ops.Zero()
	cur := target
	coeffs := make([]field.Integer, n)
	for i := n - 1; i >= 0; i-- {
		bsi := Bs.Row(i)
		num := linalg.Dot(cur, bsi, zero)
		den := linalg.Dot(bsi, bsi, zero)
		c := ops.Round(num.Div(den))
		coeffs[i] = c
		cT := ops.FromInt(c)
		cur = cur.Sub(linalg.Convert(B.Row(i), ops.FromInt).Scale(cT))
	}
	intZero := field.NewIntInt64(0)
	d := B.Row(0).Len()
	out := make([]field.Integer, d)
	for k := 0; k < d; k++ {
		acc := intZero
		for i := 0; i < n; i++ {
			acc = acc.Add(coeffs[i].Mul(B.Row(i).At(k)))
		}
		out[k] = acc
	}
	return linalg.NewVector(out)
}
