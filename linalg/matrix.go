package linalg

import "github.com/ekera/quaspy/field"

// Matrix is an ordered sequence of n row Vectors, each of length d. Shape
// (n,d) is part of the value.
type Matrix[T field.Element[T]] struct {
	rows []Vector[T]
}

// NewMatrix builds a Matrix from row vectors; all rows must share a length.
func NewMatrix[T field.Element[T]](rows []Vector[T]) Matrix[T] {
	out := make([]Vector[T], len(rows))
	copy(out, rows)
	return Matrix[T]{rows: out}
}

// NewMatrixFromRows builds a Matrix from raw entry slices.
func NewMatrixFromRows[T field.Element[T]](entries [][]T) Matrix[T] {
	rows := make([]Vector[T], len(entries))
	for i, r := range entries {
		rows[i] = NewVector(r)
	}
	return Matrix[T]{rows: rows}
}

// Dims returns (n, d): the number of rows and the row length.
func (m Matrix[T]) Dims() (n, d int) {
	n = len(m.rows)
	if n > 0 {
		d = m.rows[0].Len()
	}
	return
}

// Row returns a copy of row i.
func (m Matrix[T]) Row(i int) Vector[T] { return m.rows[i] }

// SetRow replaces row i, returning a new Matrix (entries are never aliased
// across distinct Matrix values).
func (m Matrix[T]) SetRow(i int, v Vector[T]) Matrix[T] {
	out := make([]Vector[T], len(m.rows))
	copy(out, m.rows)
	out[i] = v
	return Matrix[T]{rows: out}
}

// SwapRows returns a new Matrix with rows i and j exchanged.
func (m Matrix[T]) SwapRows(i, j int) Matrix[T] {
	out := make([]Vector[T], len(m.rows))
	copy(out, m.rows)
	out[i], out[j] = out[j], out[i]
	return Matrix[T]{rows: out}
}

// IsSquare reports whether n == d.
func (m Matrix[T]) IsSquare() bool {
	n, d := m.Dims()
	return n == d
}

// Transpose returns the d x n transpose; zero is not used.
func (m Matrix[T]) Transpose(zero T) Matrix[T] {
	n, d := m.Dims()
	out := make([][]T, d)
	for j := 0; j < d; j++ {
		out[j] = make([]T, n)
		for i := 0; i < n; i++ {
			out[j][i] = m.rows[i].At(j)
		}
	}
	return NewMatrixFromRows(out)
}

// Mul returns m*x for a d-length column vector x, i.e. the vector of row
// dot-products.
func Mul[T field.Element[T]](m Matrix[T], x Vector[T], zero T) Vector[T] {
	n, _ := m.Dims()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = Dot(m.rows[i], x, zero)
	}
	return Vector[T]{e: out}
}

// Apply returns U*B where U is an n x n unimodular/integer Matrix and B is
// an n x d Matrix: row i of the result is the linear combination of B's
// rows with coefficients U's row i. Used to track the row-multiple matrix
// alongside a reduced basis.
func Apply[T field.Element[T]](U Matrix[T], B Matrix[T], zero T) Matrix[T] {
	un, _ := U.Dims()
	_, bd := B.Dims()
	out := make([]Vector[T], un)
	for i := 0; i < un; i++ {
		acc := make([]T, bd)
		for k := range acc {
			acc[k] = zero
		}
		row := U.Row(i)
		for j := 0; j < row.Len(); j++ {
			c := row.At(j)
			if c.IsZero() {
				continue
			}
			brow := B.Row(j)
			for k := 0; k < bd; k++ {
				acc[k] = acc[k].Add(c.Mul(brow.At(k)))
			}
		}
		out[i] = Vector[T]{e: acc}
	}
	return Matrix[T]{rows: out}
}

// Identity returns the n x n identity matrix.
func Identity[T field.Element[T]](n int, zero, one T) Matrix[T] {
	rows := make([][]T, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]T, n)
		for j := 0; j < n; j++ {
			if i == j {
				rows[i][j] = one
			} else {
				rows[i][j] = zero
			}
		}
	}
	return NewMatrixFromRows(rows)
}

// ConvertMatrix maps every entry of m from S to T via f.
func ConvertMatrix[S field.Element[S], T field.Element[T]](m Matrix[S], f func(S) T) Matrix[T] {
	out := make([]Vector[T], len(m.rows))
	for i, r := range m.rows {
		out[i] = Convert(r, f)
	}
	return Matrix[T]{rows: out}
}
