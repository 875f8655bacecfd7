package field

import "math/big"

// Integer is an arbitrary-precision signed integer. The zero value is not
// valid; use NewInt or one of the constructors below.
type Integer struct {
	v *big.Int
}

// NewInt wraps a *big.Int. The Integer takes ownership; callers must not
// mutate b afterwards.
func NewInt(b *big.Int) Integer { return Integer{v: b} }

// NewIntInt64 builds an Integer from an int64.
func NewIntInt64(v int64) Integer { return Integer{v: big.NewInt(v)} }

// NewIntString parses a base-10 string into an Integer.
func NewIntString(s string) (Integer, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, false
	}
	return Integer{v: v}, true
}

// Big returns the underlying *big.Int. The caller must not mutate it.
func (a Integer) Big() *big.Int { return a.v }

// Clone returns a deep copy.
func (a Integer) Clone() Integer { return Integer{v: new(big.Int).Set(a.v)} }

func (a Integer) Add(b Integer) Integer { return Integer{v: new(big.Int).Add(a.v, b.v)} }
func (a Integer) Sub(b Integer) Integer { return Integer{v: new(big.Int).Sub(a.v, b.v)} }
func (a Integer) Mul(b Integer) Integer { return Integer{v: new(big.Int).Mul(a.v, b.v)} }
func (a Integer) Neg() Integer          { return Integer{v: new(big.Int).Neg(a.v)} }
func (a Integer) Abs() Integer          { return Integer{v: new(big.Int).Abs(a.v)} }
func (a Integer) IsZero() bool          { return a.v.Sign() == 0 }
func (a Integer) Sign() int             { return a.v.Sign() }
func (a Integer) Cmp(b Integer) int     { return a.v.Cmp(b.v) }
func (a Integer) String() string        { return a.v.String() }
func (a Integer) Int64() int64          { return a.v.Int64() }
func (a Integer) BitLen() int           { return a.v.BitLen() }

// Quo and Rem are truncated (toward zero) division, matching math/big.
func (a Integer) Quo(b Integer) Integer { return Integer{v: new(big.Int).Quo(a.v, b.v)} }
func (a Integer) Rem(b Integer) Integer { return Integer{v: new(big.Int).Rem(a.v, b.v)} }

// Mod is Euclidean mod: the result is in [0, |b|).
func (a Integer) Mod(b Integer) Integer { return Integer{v: new(big.Int).Mod(a.v, b.v)} }

// Gcd returns gcd(|a|,|b|).
func (a Integer) Gcd(b Integer) Integer { return Integer{v: new(big.Int).GCD(nil, nil, a.v, b.v)} }

// ExtGCD returns (u, v, g) with a*u + b*v = g = gcd(a,b).
func (a Integer) ExtGCD(b Integer) (u, v, g Integer) {
	uu, vv := new(big.Int), new(big.Int)
	gg := new(big.Int).GCD(uu, vv, a.v, b.v)
	return Integer{v: uu}, Integer{v: vv}, Integer{v: gg}
}

// ModInverse returns the inverse of a modulo m, and whether it exists.
func (a Integer) ModInverse(m Integer) (Integer, bool) {
	r := new(big.Int).ModInverse(a.v, m.v)
	if r == nil {
		return Integer{}, false
	}
	return Integer{v: r}, true
}

// Lsh and Rsh are bit shifts (Rsh on a negative value rounds toward -infinity,
// as math/big.Int.Rsh does for the two's-complement convention it documents).
func (a Integer) Lsh(n uint) Integer { return Integer{v: new(big.Int).Lsh(a.v, n)} }
func (a Integer) Rsh(n uint) Integer { return Integer{v: new(big.Int).Rsh(a.v, n)} }

// Bit returns the i'th bit of a, i.e. (a>>i)&1; a negative a is read in
// two's complement, as math/big.Int.Bit does.
func (a Integer) Bit(i int) uint { return a.v.Bit(i) }

// IsProbablyPrime reports whether a is prime with the given Miller-Rabin
// iteration count; callers treat the result as exact.
func (a Integer) IsProbablyPrime(n int) bool { return a.v.ProbablyPrime(n) }

// Float64 converts to a float64, losing precision for large values.
func (a Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.v).Float64()
	return f
}

// Sqrt returns floor(sqrt(a)) for a >= 0, and whether a is a perfect square.
func (a Integer) Sqrt() (Integer, bool) {
	s := new(big.Int).Sqrt(a.v)
	sq := new(big.Int).Mul(s, s)
	return Integer{v: s}, sq.Cmp(a.v) == 0
}

// DivMod returns (q, r) such that a = q*b + r with 0 <= r < |b| (Euclidean).
func (a Integer) DivMod(b Integer) (q, r Integer) {
	qq, rr := new(big.Int), new(big.Int)
	qq.DivMod(a.v, b.v, rr)
	return Integer{v: qq}, Integer{v: rr}
}
