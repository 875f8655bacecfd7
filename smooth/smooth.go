// Package smooth implements the four "missing smooth component"
// reconstruction algorithms A1-A4: given an opaque group element g of
// unknown order r and a candidate r-tilde with r = d*r-tilde for some
// cm-smooth d, recover r (or a multiple of it). Each algorithm repeatedly
// tests and shrinks a candidate exponent, bounded by a cooperative
// Timeout.
package smooth

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/numtheory"
	"github.com/ekera/quaspy/timeout"
)

type primePower struct {
	q    field.Integer
	e    int
	full field.Integer // q^e
}

// primePowers lists, for every prime q < bound, the largest power q^e <=
// bound, ascending by q. bound fits comfortably in an int (it is c*m for a
// bit-length bound m).
func primePowers(bound int) []primePower {
	primes := numtheory.PrimeRange(bound)
	out := make([]primePower, 0, len(primes))
	for _, p := range primes {
		q := field.NewIntInt64(int64(p))
		e := 0
		full := field.NewIntInt64(1)
		for {
			next := full.Mul(q)
			if next.Cmp(field.NewIntInt64(int64(bound))) > 0 {
				break
			}
			full = next
			e++
		}
		out = append(out, primePower{q: q, e: e, full: full})
	}
	return out
}

func productOf(pps []primePower) field.Integer {
	p := field.NewIntInt64(1)
	for _, f := range pps {
		p = p.Mul(f.full)
	}
	return p
}

// A1 computes P = prime_power_product(c*m) and returns r' = r-tilde*P iff
// g^r' is the identity.
func A1(g group.Element, rTilde field.Integer, m, c int, t *timeout.Timeout) (field.Integer, bool, error) {
	if err := t.Check(); err != nil {
		return field.Integer{}, false, err
	}
	pps := primePowers(c * m)
	rPrime := rTilde.Mul(productOf(pps))
	if g.Pow(rPrime).IsIdentity() {
		return rPrime, true, nil
	}
	return field.Integer{}, false, nil
}

// A2 starts from A1's r' and greedily strips factors of each prime power,
// smallest prime first, while the result remains a zero of g. Average case
// faster than A3, worst case slower.
func A2(g group.Element, rTilde field.Integer, m, c int, t *timeout.Timeout) (field.Integer, bool, error) {
	pps := primePowers(c * m)
	rPrime := rTilde.Mul(productOf(pps))
	if !g.Pow(rPrime).IsIdentity() {
		return field.Integer{}, false, nil
	}
	for _, f := range pps {
		if err := t.Check(); err != nil {
			return field.Integer{}, false, err
		}
		for rPrime.Mod(f.q).IsZero() {
			cand := rPrime.Quo(f.q)
			if !g.Pow(cand).IsIdentity() {
				break
			}
			rPrime = cand
		}
	}
	return rPrime, true, nil
}

// A3 is functionally equivalent to A2 (same final r') but strips each
// prime's surplus power via binary search instead of one factor at a time,
// giving a better worst case at the cost of a slightly worse average
// case.
func A3(g group.Element, rTilde field.Integer, m, c int, t *timeout.Timeout) (field.Integer, bool, error) {
	pps := primePowers(c * m)
	rPrime := rTilde.Mul(productOf(pps))
	if !g.Pow(rPrime).IsIdentity() {
		return field.Integer{}, false, nil
	}
	for _, f := range pps {
		if err := t.Check(); err != nil {
			return field.Integer{}, false, err
		}
		lo, hi := 0, f.e
		for lo < hi {
			mid := (lo + hi) / 2
			cand := rPrime.Quo(powInt(f.q, f.e-mid))
			if g.Pow(cand).IsIdentity() {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		rPrime = rPrime.Quo(powInt(f.q, f.e-lo))
	}
	return rPrime, true, nil
}

func powInt(base field.Integer, e int) field.Integer {
	r := field.NewIntInt64(1)
	for i := 0; i < e; i++ {
		r = r.Mul(base)
	}
	return r
}

// A4 applies A1's test to every candidate in rTildes using a shared
// exponentiation schedule (the common P factor), returning the subset that
// succeeds.
func A4(g group.Element, rTildes []field.Integer, m, c int, t *timeout.Timeout) ([]field.Integer, error) {
	pps := primePowers(c * m)
	P := productOf(pps)
	var out []field.Integer
	for _, rTilde := range rTildes {
		if err := t.Check(); err != nil {
			return nil, err
		}
		if g.Pow(rTilde.Mul(P)).IsIdentity() {
			out = append(out, rTilde)
		}
	}
	return out, nil
}
