package field

import "math/big"

// Rational is an arbitrary-precision exact fraction.
type Rational struct {
	v *big.Rat
}

// NewRat wraps a *big.Rat.
func NewRat(r *big.Rat) Rational { return Rational{v: r} }

// NewRatInt64 builds num/den.
func NewRatInt64(num, den int64) Rational {
	return Rational{v: big.NewRat(num, den)}
}

// RationalFromInt converts an Integer to a Rational with denominator 1.
func RationalFromInt(i Integer) Rational {
	return Rational{v: new(big.Rat).SetInt(i.v)}
}

// Big returns the underlying *big.Rat. The caller must not mutate it.
func (a Rational) Big() *big.Rat { return a.v }

func (a Rational) Add(b Rational) Rational { return Rational{v: new(big.Rat).Add(a.v, b.v)} }
func (a Rational) Sub(b Rational) Rational { return Rational{v: new(big.Rat).Sub(a.v, b.v)} }
func (a Rational) Mul(b Rational) Rational { return Rational{v: new(big.Rat).Mul(a.v, b.v)} }

// Div panics if b is zero, matching math/big.Rat.Quo's contract; callers in
// this module never divide by a Rational known to be zero (Gram-Schmidt
// never divides by a zero squared-norm, since a lattice basis is full rank).
func (a Rational) Div(b Rational) Rational { return Rational{v: new(big.Rat).Quo(a.v, b.v)} }

func (a Rational) Neg() Rational      { return Rational{v: new(big.Rat).Neg(a.v)} }
func (a Rational) IsZero() bool       { return a.v.Sign() == 0 }
func (a Rational) Sign() int          { return a.v.Sign() }
func (a Rational) Cmp(b Rational) int { return a.v.Cmp(b.v) }
func (a Rational) String() string     { return a.v.RatString() }

// Float64 converts to a float64, losing precision if the value does not fit.
func (a Rational) Float64() float64 {
	f, _ := a.v.Float64()
	return f
}

// IsInteger reports whether the denominator is 1.
func (a Rational) IsInteger() bool { return a.v.IsInt() }

// RoundToInt rounds to the nearest integer, ties away from zero (the C99
// round convention). Computed as floor/ceil of (2*num +/- den)/(2*den)
// using truncated division, which is exact since den > 0 always holds for
// a normalized big.Rat.
func (a Rational) RoundToInt() Integer {
	num := a.v.Num()
	den := a.v.Denom()
	adjusted := new(big.Int).Mul(num, big.NewInt(2))
	if num.Sign() >= 0 {
		adjusted.Add(adjusted, den)
	} else {
		adjusted.Sub(adjusted, den)
	}
	den2 := new(big.Int).Mul(den, big.NewInt(2))
	q := new(big.Int).Quo(adjusted, den2)
	return Integer{v: q}
}

// ToInt truncates the denominator away, returning the Integer part (toward
// zero). Used only where the caller has already checked IsInteger.
func (a Rational) ToInt() Integer {
	q := new(big.Int).Quo(a.v.Num(), a.v.Denom())
	return Integer{v: q}
}
