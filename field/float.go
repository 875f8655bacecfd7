package field

import "math/big"

// Float is a binary floating-point number at a caller-chosen precision,
// used only where a solver explicitly asks for fixed-precision
// Gram-Schmidt data instead of exact rationals.
type Float struct {
	v    *big.Float
	prec uint
}

// NewFloat returns the zero value at the given precision.
func NewFloat(prec uint) Float {
	return Float{v: new(big.Float).SetPrec(prec), prec: prec}
}

// FloatFromInt64 builds a Float from an int64 at the given precision.
func FloatFromInt64(prec uint, v int64) Float {
	return Float{v: new(big.Float).SetPrec(prec).SetInt64(v), prec: prec}
}

// FloatFromInt converts an Integer to a Float at the given precision.
func FloatFromInt(prec uint, i Integer) Float {
	return Float{v: new(big.Float).SetPrec(prec).SetInt(i.v), prec: prec}
}

// FloatFromRat converts a Rational to a Float at the given precision.
func FloatFromRat(prec uint, r Rational) Float {
	return Float{v: new(big.Float).SetPrec(prec).SetRat(r.v), prec: prec}
}

// Prec returns the configured binary precision.
func (a Float) Prec() uint { return a.prec }

// Big returns the underlying *big.Float. The caller must not mutate it.
func (a Float) Big() *big.Float { return a.v }

func (a Float) Add(b Float) Float {
	return Float{v: new(big.Float).SetPrec(a.prec).Add(a.v, b.v), prec: a.prec}
}
func (a Float) Sub(b Float) Float {
	return Float{v: new(big.Float).SetPrec(a.prec).Sub(a.v, b.v), prec: a.prec}
}
func (a Float) Mul(b Float) Float {
	return Float{v: new(big.Float).SetPrec(a.prec).Mul(a.v, b.v), prec: a.prec}
}
func (a Float) Div(b Float) Float {
	return Float{v: new(big.Float).SetPrec(a.prec).Quo(a.v, b.v), prec: a.prec}
}
func (a Float) Neg() Float {
	return Float{v: new(big.Float).SetPrec(a.prec).Neg(a.v), prec: a.prec}
}
func (a Float) IsZero() bool     { return a.v.Sign() == 0 }
func (a Float) Sign() int        { return a.v.Sign() }
func (a Float) Cmp(b Float) int  { return a.v.Cmp(b.v) }
func (a Float) String() string   { return a.v.Text('g', int(a.prec/3)+1) }
func (a Float) Float64() float64 { f, _ := a.v.Float64(); return f }

// RoundToInt rounds to the nearest integer, ties away from zero, matching
// field.Rational.RoundToInt.
func (a Float) RoundToInt() Integer {
	half := new(big.Float).SetPrec(a.prec).SetFloat64(0.5)
	var shifted *big.Float
	if a.v.Sign() >= 0 {
		shifted = new(big.Float).SetPrec(a.prec).Add(a.v, half)
	} else {
		shifted = new(big.Float).SetPrec(a.prec).Sub(a.v, half)
	}
	i, _ := shifted.Int(nil)
	return Integer{v: i}
}
