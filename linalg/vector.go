// Package linalg implements exact matrix and vector primitives:
// dimensions, left-solve, exact inverse, row operations, dot product,
// squared norm, projection and Gram-Schmidt, generic over the element
// type (Integer, Rational or Float(p)) via type parameters.
package linalg

import "github.com/ekera/quaspy/field"

// Vector is an ordered, fixed-length sequence of entries of element type
// T. Entries are owned by the Vector; no aliasing is observable across
// distinct Vectors.
type Vector[T field.Element[T]] struct {
	e []T
}

// NewVector copies entries into a fresh Vector.
func NewVector[T field.Element[T]](entries []T) Vector[T] {
	return Vector[T]{e: append([]T(nil), entries...)}
}

// Len returns the number of entries.
func (v Vector[T]) Len() int { return len(v.e) }

// At returns the i'th entry.
func (v Vector[T]) At(i int) T { return v.e[i] }

// Slice returns a copy of the underlying entries.
func (v Vector[T]) Slice() []T { return append([]T(nil), v.e...) }

// Add returns v+w entry-wise.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	out := make([]T, len(v.e))
	for i := range v.e {
		out[i] = v.e[i].Add(w.e[i])
	}
	return Vector[T]{e: out}
}

// Sub returns v-w entry-wise.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	out := make([]T, len(v.e))
	for i := range v.e {
		out[i] = v.e[i].Sub(w.e[i])
	}
	return Vector[T]{e: out}
}

// Neg negates every entry.
func (v Vector[T]) Neg() Vector[T] {
	out := make([]T, len(v.e))
	for i := range v.e {
		out[i] = v.e[i].Neg()
	}
	return Vector[T]{e: out}
}

// Scale multiplies every entry by c.
func (v Vector[T]) Scale(c T) Vector[T] {
	out := make([]T, len(v.e))
	for i := range v.e {
		out[i] = v.e[i].Mul(c)
	}
	return Vector[T]{e: out}
}

// IsZero reports whether every entry is zero.
func (v Vector[T]) IsZero() bool {
	for _, x := range v.e {
		if !x.IsZero() {
			return false
		}
	}
	return true
}

// Equal reports entry-wise equality (via Cmp).
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v.e) != len(w.e) {
		return false
	}
	for i := range v.e {
		if v.e[i].Cmp(w.e[i]) != 0 {
			return false
		}
	}
	return true
}

// Dot returns the inner product of v and w, using zero as the additive
// identity accumulator (field.Ops[T].Zero()).
func Dot[T field.Element[T]](v, w Vector[T], zero T) T {
	acc := zero
	for i := range v.e {
		acc = acc.Add(v.e[i].Mul(w.e[i]))
	}
	return acc
}

// Norm2 returns the squared Euclidean norm of v.
func Norm2[T field.Element[T]](v Vector[T], zero T) T {
	return Dot(v, v, zero)
}

// Convert maps every entry of v from type S to T via f, e.g. lifting an
// Integer vector into Rational or Float(p) for Gram-Schmidt.
func Convert[S field.Element[S], T field.Element[T]](v Vector[S], f func(S) T) Vector[T] {
	out := make([]T, v.Len())
	for i, x := range v.e {
		out[i] = f(x)
	}
	return Vector[T]{e: out}
}
