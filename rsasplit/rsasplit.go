// Package rsasplit recovers the two prime factors of an RSA modulus N from
// a short logarithm d = (p-1)/2 + (q-1)/2 - 2^(l-1): since p + q =
// 2d + 2^l + 2 and p*q = N, the primes are the roots of the quadratic
// z^2 - (p+q)*z + N.
package rsasplit

import "github.com/ekera/quaspy/field"

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrNoSplit is returned when the quadratic has no integer roots
// multiplying to N, i.e. (d, l) do not describe a valid split of N.
const ErrNoSplit = fmtError("rsasplit: d and l do not split N")

// SplitFromD returns the prime pair (p, q) of N, with p <= q, from the
// logarithm d recovered by the short-DL solver at bit parameter l.
func SplitFromD(d field.Integer, l int, N field.Integer) (p, q field.Integer, err error) {
	two := field.NewIntInt64(2)
	s := two.Mul(d).Add(field.NewIntInt64(1).Lsh(uint(l))).Add(two)
	disc := s.Mul(s).Sub(field.NewIntInt64(4).Mul(N))
	if disc.Sign() < 0 {
		return field.Integer{}, field.Integer{}, ErrNoSplit
	}
	root, exact := disc.Sqrt()
	if !exact {
		return field.Integer{}, field.Integer{}, ErrNoSplit
	}
	p = s.Sub(root).Quo(two)
	q = s.Add(root).Quo(two)
	if p.Sign() <= 0 || !p.Mul(q).Sub(N).IsZero() {
		return field.Integer{}, field.Integer{}, ErrNoSplit
	}
	return p, q, nil
}
