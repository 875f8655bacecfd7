package lattice

import (
	"sort"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/timeout"
)

// Enumerate returns every lattice vector v = sum x_i*b_i with
// ||v - centre|| <= radius, for a delta-LLL-reduced B with Gram-Schmidt
// data (Bs, M). It walks the depth-n coordinate tree
// top-down: at level i the candidate projection is
// c_i = <remaining, b_i*> / ||b_i*||^2 and integer coordinates are tried in
// [c_i-R_i, c_i+R_i], zig-zagging outward from c_i, backtracking once the
// interval is empty or the budget for this level is negative.
func Enumerate(B linalg.Matrix[field.Integer], Bs, M linalg.Matrix[field.Rational], centre linalg.Vector[field.Rational], radius field.Rational, t *timeout.Timeout) ([]linalg.Vector[field.Integer], error) {
	return EnumerateRadius2(B, Bs, M, centre, radius.Mul(radius), t)
}

// EnumerateRadius2 is Enumerate with the squared radius given exactly.
// Callers whose bound is naturally a squared norm (2^(2m-1), a Babai
// residual) use this form so no square root ever has to be approximated on
// the membership test itself.
func EnumerateRadius2(B linalg.Matrix[field.Integer], Bs, M linalg.Matrix[field.Rational], centre linalg.Vector[field.Rational], radius2 field.Rational, t *timeout.Timeout) ([]linalg.Vector[field.Integer], error) {
	n, d := B.Dims()
	zero := field.NewRatInt64(0, 1)
	if radius2.Sign() < 0 {
		return nil, nil
	}

	var results []linalg.Vector[field.Integer]
	coeffs := make([]field.Integer, n)

	var recurse func(level int, remaining linalg.Vector[field.Rational], budget field.Rational) error
	recurse = func(level int, remaining linalg.Vector[field.Rational], budget field.Rational) error {
		if err := t.Check(); err != nil {
			return err
		}
		if level < 0 {
			if budget.Sign() >= 0 {
				out := make([]field.Integer, d)
				for k := 0; k < d; k++ {
					acc := field.NewIntInt64(0)
					for i := 0; i < n; i++ {
						acc = acc.Add(coeffs[i].Mul(B.Row(i).At(k)))
					}
					out[k] = acc
				}
				results = append(results, linalg.NewVector(out))
			}
			return nil
		}
		bi := Bs.Row(level)
		den := linalg.Dot(bi, bi, zero)
		if den.IsZero() {
			return nil
		}
		c := linalg.Dot(remaining, bi, zero).Div(den)
		r2 := budget.Div(den)
		if r2.Sign() < 0 {
			return nil
		}
		r := sqrtRationalUpper(r2)
		lo := c.Sub(r).RoundToInt()
		hi := c.Add(r).RoundToInt()
		if lo.Cmp(hi) > 0 {
			return nil
		}
		// Visit candidates ordered by distance from c (zig-zag outward),
		// so that a tight budget at a deeper level prunes the search as
		// early as possible.
		for _, x := range candidatesByDistance(lo, hi, c) {
			xR := field.RationalFromInt(x)
			delta := xR.Sub(c)
			cost := delta.Mul(delta).Mul(den)
			newBudget := budget.Sub(cost)
			if newBudget.Sign() < 0 {
				continue
			}
			coeffs[level] = x
			newRemaining := remaining.Sub(linalg.Convert(B.Row(level), field.RationalFromInt).Scale(xR))
			if err := recurse(level-1, newRemaining, newBudget); err != nil {
				return err
			}
		}
		return nil
	}

	if err := recurse(n-1, centre, radius2); err != nil {
		return nil, err
	}
	return results, nil
}

// candidatesByDistance lists the integers in [lo, hi] ordered by distance
// from c, nearest first, breaking ties toward the lower value. The list is
// collected up front rather than walked incrementally since the interval
// is always small enough to enumerate directly.
func candidatesByDistance(lo, hi field.Integer, c field.Rational) []field.Integer {
	out := make([]field.Integer, 0, 1)
	for x := lo; x.Cmp(hi) <= 0; x = x.Add(field.NewIntInt64(1)) {
		out = append(out, x)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := field.RationalFromInt(out[i]).Sub(c)
		dj := field.RationalFromInt(out[j]).Sub(c)
		return di.Mul(di).Cmp(dj.Mul(dj)) < 0
	})
	return out
}

// sqrtRationalUpper returns a Rational upper bound on sqrt(x) for x >= 0,
// from an exact integer square root; used only to size the
// enumeration interval, so a small excess is harmless (extra candidates are
// simply rejected by the exact budget check).
func sqrtRationalUpper(x field.Rational) field.Rational {
	if x.Sign() <= 0 {
		return field.NewRatInt64(0, 1)
	}
	// x = p/q in lowest terms, so sqrt(x) = sqrt(p*q)/q <= (isqrt(p*q)+1)/q
	p, q := field.NewInt(x.Big().Num()), field.NewInt(x.Big().Denom())
	s, _ := p.Mul(q).Sqrt()
	return field.RationalFromInt(s.Add(field.NewIntInt64(1))).Div(field.RationalFromInt(q))
}

// SolveCVP returns the single lattice vector closest to t,
// by enumerating within a radius derived from Babai's estimate and picking
// the strict minimiser.
func SolveCVP(B linalg.Matrix[field.Integer], Bs, M linalg.Matrix[field.Rational], t linalg.Vector[field.Rational], tmo *timeout.Timeout) (linalg.Vector[field.Integer], error) {
	ops := field.RationalOps()
	babai := NearestPlane(B, Bs, t, ops)
	babaiR := linalg.Convert(babai, field.RationalFromInt)
	diff := babaiR.Sub(t)
	zero := field.NewRatInt64(0, 1)
	radius2 := linalg.Dot(diff, diff, zero)
	// Babai's distance itself is an attainable radius, so enumerating with
	// exactly radius2 always includes the true closest vector.
	candidates, err := EnumerateRadius2(B, Bs, M, t, radius2, tmo)
	if err != nil {
		return linalg.Vector[field.Integer]{}, err
	}
	if len(candidates) == 0 {
		return babai, nil
	}
	best := candidates[0]
	bestD := distance2(best, t)
	for _, c := range candidates[1:] {
		d := distance2(c, t)
		if d.Cmp(bestD) < 0 {
			best, bestD = c, d
		}
	}
	return best, nil
}

func distance2(v linalg.Vector[field.Integer], t linalg.Vector[field.Rational]) field.Rational {
	vr := linalg.Convert(v, field.RationalFromInt)
	diff := vr.Sub(t)
	zero := field.NewRatInt64(0, 1)
	return linalg.Dot(diff, diff, zero)
}

// SolveSVP returns the non-zero lattice vector of minimum norm, breaking
// ties by lexicographic order of the integer coordinate vector. B must be
// delta-LLL-reduced; its first row is then within a factor 2^((n-1)/2) of
// the shortest vector and serves as the initial radius estimate.
func SolveSVP(B linalg.Matrix[field.Integer], Bs, M linalg.Matrix[field.Rational], t *timeout.Timeout) (linalg.Vector[field.Integer], error) {
	_, d := B.Dims()
	zero := field.NewRatInt64(0, 1)
	b1 := B.Row(0)
	b1r := linalg.Convert(b1, field.RationalFromInt)
	radius2 := linalg.Dot(b1r, b1r, zero)
	zeros := make([]field.Rational, d)
	for i := range zeros {
		zeros[i] = zero
	}
	centre := linalg.NewVector(zeros)
	candidates, err := EnumerateRadius2(B, Bs, M, centre, radius2, t)
	if err != nil {
		return linalg.Vector[field.Integer]{}, err
	}
	var best linalg.Vector[field.Integer]
	var bestNorm field.Integer
	found := false
	for _, c := range candidates {
		if c.IsZero() {
			continue
		}
		norm := linalg.Norm2(c, field.NewIntInt64(0))
		if !found || norm.Cmp(bestNorm) < 0 || (norm.Cmp(bestNorm) == 0 && lexLess(c, best)) {
			best, bestNorm, found = c, norm, true
		}
	}
	if !found {
		return linalg.Vector[field.Integer]{}, fmtError("lattice: no non-zero vector found within radius")
	}
	return best, nil
}

func lexLess(a, b linalg.Vector[field.Integer]) bool {
	for i := 0; i < a.Len(); i++ {
		c := a.At(i).Cmp(b.At(i))
		if c != 0 {
			return c < 0
		}
	}
	return false
}
