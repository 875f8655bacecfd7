package dlog

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/timeout"
)

// SolveJKForDGivenR recovers a general discrete logarithm d with x = g^d
// when the order r of g is already known. A pair (j, k)
// with j in [0, 2^(m+sigma)) and k in [0, 2^l) encodes an index z and the
// residue w = d*z mod r through j ~ 2^(m+sigma)*z/r and k ~ 2^l*w/r. The
// grid search over eta in [-bEta, bEta] and t in [-bT, bT] absorbs the
// rounding offsets in both encodings: for each (eta, t) it solves
// d = (round(k*r/2^l) + t) * (round(j*r/2^(m+sigma)) + eta)^-1 mod r and
// verifies the candidate against x.
func SolveJKForDGivenR(j, k field.Integer, m, sigma, l int, g, x group.Element, r field.Integer, bEta, bT int, tmo *timeout.Timeout) (field.Integer, bool, error) {
	D := pow2(m + sigma)
	if j.Sign() < 0 || j.Cmp(D) >= 0 {
		return field.Integer{}, false, ErrDomain
	}
	if k.Sign() < 0 || k.Cmp(pow2(l)) >= 0 {
		return field.Integer{}, false, ErrDomain
	}
	if r.Sign() <= 0 {
		return field.Integer{}, false, fmtError("dlog: order must be positive")
	}

	zBase := roundDiv(j.Mul(r), D)
	wBase := roundDiv(k.Mul(r), pow2(l))
	one := field.NewIntInt64(1)
	xh := x.Hash()

	for eta := -bEta; eta <= bEta; eta++ {
		if err := tmo.Check(); err != nil {
			return field.Integer{}, false, err
		}
		z := zBase.Add(field.NewIntInt64(int64(eta))).Mod(r)
		if z.IsZero() || z.Gcd(r).Cmp(one) != 0 {
			continue
		}
		zInv, ok := z.ModInverse(r)
		if !ok {
			continue
		}
		for t := -bT; t <= bT; t++ {
			w := wBase.Add(field.NewIntInt64(int64(t)))
			d := w.Mul(zInv).Mod(r)
			cand := g.Pow(d)
			if cand.Hash() == xh && cand.Equal(x) {
				return d, true, nil
			}
		}
	}
	return field.Integer{}, false, nil
}

// roundDiv returns round(a/b) for b > 0, ties away from zero.
func roundDiv(a, b field.Integer) field.Integer {
	return field.RationalFromInt(a).Div(field.RationalFromInt(b)).RoundToInt()
}
