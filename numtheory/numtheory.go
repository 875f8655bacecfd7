// Package numtheory implements the arithmetic kernel shared by the
// solvers: truncated centered reduction, 2-adic valuation, CRT
// recomposition over arbitrary pairwise-coprime moduli, smoothness
// testing and prime-power products.
package numtheory

import (
	"math/big"

	"github.com/ekera/quaspy/field"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrNonPositiveModulus is returned by TruncMod when N <= 0.
const ErrNonPositiveModulus = fmtError("numtheory: modulus must be positive")

// ErrNonCoprimeModuli is returned by CRT when two moduli share a factor.
const ErrNonCoprimeModuli = fmtError("numtheory: moduli must be pairwise coprime")

// ErrModulusTooSmall is returned by CRT when a modulus is less than 2.
const ErrModulusTooSmall = fmtError("numtheory: modulus must be >= 2")

// ErrNonPositiveBound is returned by IsBSmooth when B <= 0.
const ErrNonPositiveBound = fmtError("numtheory: smoothness bound must be positive")

// TruncMod reduces x modulo N into the symmetric half-open interval
// [-ceil(N/2), ceil(N/2)). Fails only when N <= 0.
func TruncMod(x, N field.Integer) (field.Integer, error) {
	if N.Sign() <= 0 {
		return field.Integer{}, ErrNonPositiveModulus
	}
	r := x.Mod(N) // Euclidean remainder, in [0, N)
	ceilHalfN := ceilDiv2(N)
	if r.Cmp(ceilHalfN) >= 0 {
		r = r.Sub(N)
	}
	return r, nil
}

// ceilDiv2 returns ceil(N/2) for positive N.
func ceilDiv2(N field.Integer) field.Integer {
	one := field.NewIntInt64(1)
	two := field.NewIntInt64(2)
	return N.Add(one).Quo(two)
}

// Kappa returns the largest t such that 2^t divides x. Kappa(0) is undefined
// and must not be called.
func Kappa(x field.Integer) int {
	b := x.Big()
	t := 0
	for b.Bit(t) == 0 {
		t++
	}
	return t
}

// CRT computes the unique v in [0, prod(moduli)) with v = values[i] (mod
// moduli[i]) for every i, via iterated two-modulus CRT. Each
// modulus must be >= 2 and the moduli must be pairwise coprime; violations
// are reported rather than silently producing a wrong answer.
func CRT(values, moduli []field.Integer) (field.Integer, error) {
	if len(values) != len(moduli) {
		return field.Integer{}, fmtError("numtheory: values and moduli must have equal length")
	}
	if len(values) == 0 {
		return field.Integer{}, fmtError("numtheory: CRT requires at least one modulus")
	}
	two := field.NewIntInt64(2)
	for _, m := range moduli {
		if m.Cmp(two) < 0 {
			return field.Integer{}, ErrModulusTooSmall
		}
	}
	v := values[0].Mod(moduli[0])
	M := moduli[0]
	for i := 1; i < len(moduli); i++ {
		g := M.Gcd(moduli[i])
		if g.Cmp(field.NewIntInt64(1)) != 0 {
			return field.Integer{}, ErrNonCoprimeModuli
		}
		v2, err := crtCombine(v, M, values[i].Mod(moduli[i]), moduli[i])
		if err != nil {
			return field.Integer{}, err
		}
		v = v2
		M = M.Mul(moduli[i])
	}
	return v, nil
}

// crtCombine folds (v1 mod m1) and (v2 mod m2) into a single residue mod
// m1*m2 with a Garner-style step.
func crtCombine(v1, m1, v2, m2 field.Integer) (field.Integer, error) {
	inv, ok := m1.ModInverse(m2)
	if !ok {
		return field.Integer{}, ErrNonCoprimeModuli
	}
	t := v2.Sub(v1).Mul(inv).Mod(m2)
	return v1.Add(m1.Mul(t)), nil
}

// IsBSmooth reports whether, in the unique prime factorization d = prod
// q_i^e_i, every prime power q_i^e_i is <= B. Factorization
// is by trial division, adequate for the cm-smoothness bounds (c*m, with m
// the bit-size of the hidden order) this kernel is used against.
func IsBSmooth(d field.Integer, B field.Integer) (bool, error) {
	if B.Sign() <= 0 {
		return false, ErrNonPositiveBound
	}
	b := B.Big()
	rem := new(big.Int).Abs(d.Big())
	one := big.NewInt(1)
	if rem.Cmp(one) == 0 {
		return true, nil
	}
	p := big.NewInt(2)
	for new(big.Int).Mul(p, p).Cmp(rem) <= 0 {
		if new(big.Int).Mod(rem, p).Sign() == 0 {
			pw := new(big.Int).Set(p)
			for new(big.Int).Mod(rem, p).Sign() == 0 {
				rem.Div(rem, p)
				pw.Mul(pw, p)
			}
			// pw currently holds one factor of p beyond the true power
			// (the loop multiplies before checking divisibility again);
			// undo that last multiply to get q^e exactly.
			pw.Div(pw, p)
			if pw.Cmp(b) > 0 {
				return false, nil
			}
		}
		p.Add(p, one)
	}
	if rem.Cmp(one) > 0 {
		if rem.Cmp(b) > 0 {
			return false, nil
		}
	}
	return true, nil
}

// PrimeRange returns the ordered ascending list of primes strictly less
// than B, via a simple sieve.
func PrimeRange(B int) []int {
	if B <= 2 {
		return nil
	}
	sieve := make([]bool, B)
	var primes []int
	for p := 2; p < B; p++ {
		if sieve[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m < B; m += p {
			sieve[m] = true
		}
	}
	return primes
}

// PrimePowerProduct returns prod_{p<B} p^floor(log_p(B)), the largest
// B-power-smooth integer's defining product, used by the
// smooth-reconstruction algorithms as their padding factor P.
func PrimePowerProduct(B int) field.Integer {
	product := field.NewIntInt64(1)
	for _, p := range PrimeRange(B) {
		bp := field.NewIntInt64(int64(p))
		pw := field.NewIntInt64(int64(p))
		for {
			next := pw.Mul(bp)
			if next.Cmp(field.NewIntInt64(int64(B))) > 0 {
				break
			}
			pw = next
		}
		product = product.Mul(pw)
	}
	return product
}
