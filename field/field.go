// Package field provides the three exact arithmetic types the lattice and
// number-theory core is built over: Integer, Rational and Float(p). Integer
// and Rational wrap math/big exactly; Float(p) wraps *big.Float at a caller
// chosen binary precision. All three share the Element contract below so
// linalg and lattice code can be written once and instantiated over whichever
// type a caller's precision setting demands.
package field

// Element is implemented by every exact number type used in vectors and
// matrices. It carries only what the generic linear-algebra code needs;
// Integer does not support Div and so does not implement Field.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	IsZero() bool
	Sign() int
	Cmp(T) int
	String() string
}

// Field is an Element type closed under exact division. Rational and
// Float(p) implement it; Integer does not, since 1/2 is not an Integer.
type Field[T any] interface {
	Element[T]
	Div(T) T
}

// Ops bundles the factory functions generic code needs to build fresh values
// of a field/element type T without a constraint method for "zero value of
// T". A concrete Ops[T] is supplied by the caller alongside the data.
type Ops[T any] struct {
	Zero    func() T
	One     func() T
	FromInt func(Integer) T
	// Round returns the nearest Integer to a value of type T, ties away
	// from zero.
	Round func(T) Integer
}

// IntegerOps returns the Ops value for Integer.
func IntegerOps() Ops[Integer] {
	return Ops[Integer]{
		Zero:    func() Integer { return NewIntInt64(0) },
		One:     func() Integer { return NewIntInt64(1) },
		FromInt: func(i Integer) Integer { return i.Clone() },
		Round:   func(i Integer) Integer { return i.Clone() },
	}
}

// RationalOps returns the Ops value for Rational.
func RationalOps() Ops[Rational] {
	return Ops[Rational]{
		Zero:    func() Rational { return NewRatInt64(0, 1) },
		One:     func() Rational { return NewRatInt64(1, 1) },
		FromInt: func(i Integer) Rational { return RationalFromInt(i) },
		Round:   func(r Rational) Integer { return r.RoundToInt() },
	}
}

// FloatOps returns the Ops value for Float(prec).
func FloatOps(prec uint) Ops[Float] {
	return Ops[Float]{
		Zero:    func() Float { return NewFloat(prec) },
		One:     func() Float { return FloatFromInt64(prec, 1) },
		FromInt: func(i Integer) Float { return FloatFromInt(prec, i) },
		Round:   func(f Float) Integer { return f.RoundToInt() },
	}
}
