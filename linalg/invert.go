package linalg

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/timeout"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrSingular is returned by Invert/SolveLeftField when the matrix has zero
// determinant.
const ErrSingular = fmtError("linalg: matrix is singular")

// ErrNotSquare is returned when a square-only operation receives a
// non-square Matrix.
const ErrNotSquare = fmtError("linalg: matrix must be square")

// Invert computes B^-1 by exact Gaussian elimination with full row
// pivoting (any nonzero pivot suffices since T is a Field with exact
// division). Fails with ErrSingular if B has zero
// determinant.
func Invert[T field.Field[T]](B Matrix[T], zero, one T) (Matrix[T], error) {
	if !B.IsSquare() {
		return Matrix[T]{}, ErrNotSquare
	}
	n, _ := B.Dims()
	aug := make([][]T, n)
	for i := 0; i < n; i++ {
		row := make([]T, 2*n)
		for j := 0; j < n; j++ {
			row[j] = B.Row(i).At(j)
		}
		for j := 0; j < n; j++ {
			if i == j {
				row[n+j] = one
			} else {
				row[n+j] = zero
			}
		}
		aug[i] = row
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !aug[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return Matrix[T]{}, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		inv := one.Div(aug[col][col])
		for j := 0; j < 2*n; j++ {
			aug[col][j] = aug[col][j].Mul(inv)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor.IsZero() {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] = aug[r][j].Sub(factor.Mul(aug[col][j]))
			}
		}
	}
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		out[i] = append([]T(nil), aug[i][n:]...)
	}
	return NewMatrixFromRows(out), nil
}

// SolveLeftField returns c such that c*B = t, computed as t * B^-1.
// Fails with ErrSingular if B is not invertible.
func SolveLeftField[T field.Field[T]](B Matrix[T], t Vector[T], zero, one T) (Vector[T], error) {
	inv, err := Invert(B, zero, one)
	if err != nil {
		return Vector[T]{}, err
	}
	invT := inv.Transpose(zero)
	return Mul(invT, t, zero), nil
}

// SolveLeftInteger2x2 returns the integer vector c such that c*B = o for a
// 2x2 integer basis B and integer row vector o, iff o*B^-1 lies in Z^2;
// otherwise ok is false. t is checked once on entry, so a Timeout can be
// threaded through call sites uniformly with the other solvers; the
// computation itself is O(1).
func SolveLeftInteger2x2(B Matrix[field.Integer], o Vector[field.Integer], t *timeout.Timeout) (Vector[field.Integer], bool, error) {
	if err := t.Check(); err != nil {
		return Vector[field.Integer]{}, false, err
	}
	n, d := B.Dims()
	if n != 2 || d != 2 {
		return Vector[field.Integer]{}, false, ErrNotSquare
	}
	a, b := B.Row(0).At(0), B.Row(0).At(1)
	c, dd := B.Row(1).At(0), B.Row(1).At(1)
	det := a.Mul(dd).Sub(b.Mul(c))
	if det.IsZero() {
		return Vector[field.Integer]{}, false, ErrSingular
	}
	o0, o1 := o.At(0), o.At(1)
	num0 := o0.Mul(dd).Sub(o1.Mul(c))
	num1 := o1.Mul(a).Sub(o0.Mul(b))
	q0, r0 := num0.DivMod(det)
	q1, r1 := num1.DivMod(det)
	if !r0.IsZero() || !r1.IsZero() {
		return Vector[field.Integer]{}, false, nil
	}
	return NewVector([]field.Integer{q0, q1}), true, nil
}
