// Package lattice implements lattice reduction and lattice-point search:
// 2D Lagrange reduction, Babai's nearest-plane algorithm, n-dimensional
// LLL, and enumeration with its CVP/SVP specialisations. Reducers maintain
// the basis incrementally, round half away from zero, and check a
// cooperative Timeout at the head of every outer loop.
package lattice

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/timeout"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrNot2x2 is returned when a 2D-only operation receives a non-2x2 basis.
const ErrNot2x2 = fmtError("lattice: basis must be 2x2")

// norm2Int returns the squared norm of an Integer vector.
func norm2Int(v linalg.Vector[field.Integer]) field.Integer {
	return linalg.Norm2(v, field.NewIntInt64(0))
}

func dotInt(v, w linalg.Vector[field.Integer]) field.Integer {
	return linalg.Dot(v, w, field.NewIntInt64(0))
}

// IsLagrangeReduced reports whether A satisfies ||b1|| <= ||b2|| and
// |<b1,b2>| <= ||b1||^2/2. The comparison is done in integer
// arithmetic as 2*|<b1,b2>| <= ||b1||^2 to avoid a division.
func IsLagrangeReduced(A linalg.Matrix[field.Integer]) bool {
	n, d := A.Dims()
	if n != 2 || d != 2 {
		return false
	}
	b1, b2 := A.Row(0), A.Row(1)
	n1, n2 := norm2Int(b1), norm2Int(b2)
	if n1.Cmp(n2) > 0 {
		return false
	}
	ip := dotInt(b1, b2).Abs()
	two := field.NewIntInt64(2)
	return two.Mul(ip).Cmp(n1) <= 0
}

// Lagrange reduces the 2x2 integer basis A, optionally seeded with an
// initial row-multiple matrix U of full rank such that U*A is already
// close to reduced, as when re-reducing for an adjacent frequency. It
// returns (A', U') with A' Lagrange-reduced and A' = U'*A; det(U') is +-1
// when U is nil and +-det(U) otherwise.
func Lagrange(A linalg.Matrix[field.Integer], U *linalg.Matrix[field.Integer], t *timeout.Timeout) (linalg.Matrix[field.Integer], linalg.Matrix[field.Integer], error) {
	n, d := A.Dims()
	if n != 2 || d != 2 {
		return linalg.Matrix[field.Integer]{}, linalg.Matrix[field.Integer]{}, ErrNot2x2
	}
	zero, one := field.NewIntInt64(0), field.NewIntInt64(1)
	var cur linalg.Matrix[field.Integer]
	var curU linalg.Matrix[field.Integer]
	if U != nil {
		cur = linalg.Apply(*U, A, zero)
		curU = *U
	} else {
		cur = A
		curU = linalg.Identity(2, zero, one)
	}

	for {
		if err := t.Check(); err != nil {
			return linalg.Matrix[field.Integer]{}, linalg.Matrix[field.Integer]{}, err
		}
		b1, b2 := cur.Row(0), cur.Row(1)
		if norm2Int(b2).Cmp(norm2Int(b1)) < 0 {
			cur = cur.SwapRows(0, 1)
			curU = curU.SwapRows(0, 1)
			b1, b2 = cur.Row(0), cur.Row(1)
		}
		n1 := norm2Int(b1)
		if n1.IsZero() {
			break
		}
		ip := dotInt(b1, b2)
		if field.NewIntInt64(2).Mul(ip.Abs()).Cmp(n1) <= 0 {
			// already Lagrange-reduced: |<b1,b2>| <= ||b1||^2/2
			break
		}
		m := field.RationalFromInt(ip).Div(field.RationalFromInt(n1)).RoundToInt()
		newB2 := b2.Sub(b1.Scale(m))
		newU2 := curU.Row(1).Sub(curU.Row(0).Scale(m))
		cur = cur.SetRow(1, newB2)
		curU = curU.SetRow(1, newU2)
	}
	return cur, curU, nil
}
