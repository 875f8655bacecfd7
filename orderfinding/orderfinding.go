// Package orderfinding turns frequency samples from the order-finding
// quantum circuit into the order r of an opaque group element. A single
// frequency j is lifted to candidate partial orders via
// continued fractions or a 2D lattice (Lagrange-reduced, with the
// row-multiple matrix reused across adjacent offsets); several frequencies
// are combined in an (n+1)-dimensional LLL-reduced lattice. Candidates are
// completed to r by the smooth-reconstruction algorithms of package smooth.
package orderfinding

import (
	"github.com/ekera/quaspy/candidate"
	"github.com/ekera/quaspy/contfrac"
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/lattice"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/smooth"
	"github.com/ekera/quaspy/timeout"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrDomain is returned when j lies outside [0, 2^(m+l)).
const ErrDomain = fmtError("orderfinding: j out of range [0, 2^(m+l))")

// SolutionMethod selects how a frequency j is lifted to candidate r-tilde
// values.
type SolutionMethod int

const (
	// ContinuedFractions takes the last convergent denominator of
	// j/2^(m+l) below 2^((m+l)/2). Requires r^2 < 2^(m+l).
	ContinuedFractions SolutionMethod = iota
	// LatticeShortestVector Lagrange-reduces the 2D lattice spanned by
	// (j, 1) and (2^(m+l+1), 0); the second coordinate of the shortest
	// vector is +-r-tilde.
	LatticeShortestVector
	// LatticeEnumerate reduces the same lattice and enumerates every
	// non-zero vector of norm at most 2^(m-1/2), yielding one candidate
	// per vector.
	LatticeEnumerate
)

// Options configures SolveJForR. The zero value selects continued
// fractions, c = 1 and an offset bound of 1000, mirroring the explicit
// parameter-struct convention used throughout this module.
type Options struct {
	// Method is how j+offset is lifted to r-tilde candidates.
	Method SolutionMethod
	// C is the cm-smoothness multiplier; the missing factor d is assumed
	// to have every prime power at most C*m. Defaults to 1.
	C int
	// MaxOffset bounds the offsets tried on each side of j. Defaults to
	// 1000.
	MaxOffset int
	// AcceptMultiple returns the first r' with g^r' = 1 seen (not
	// necessarily the order) instead of searching for the minimum.
	AcceptMultiple bool
	// IsolatePeak stops the offset scan once a failing offset has been
	// seen on each side of the best-producing offset.
	IsolatePeak bool
	// Speculative uses algorithm A2 (exponent shaving) instead of A3
	// (binary search) to complete candidates.
	Speculative bool
}

func (o Options) withDefaults() Options {
	if o.C == 0 {
		o.C = 1
	}
	if o.MaxOffset == 0 {
		o.MaxOffset = 1000
	}
	return o
}

// offsets yields 0, +1, -1, +2, -2, ..., +bound, -bound and then stops.
// The symmetric scan order is what makes peak isolation meaningful: after
// a hit, the very next iterations probe both flanks of the peak.
type offsets struct {
	bound int
	mag   int
	neg   bool
}

func (o *offsets) next() (int, bool) {
	if !o.neg {
		o.neg = true
		if o.mag > o.bound {
			return 0, false
		}
		return o.mag, true
	}
	o.neg = false
	v := -o.mag
	o.mag++
	if v == 0 {
		return o.next()
	}
	if -v > o.bound {
		return 0, false
	}
	return v, true
}

func pow2(e int) field.Integer {
	return field.NewIntInt64(1).Lsh(uint(e))
}

// SolveJForR recovers the order r of g from a single frequency sample j
// drawn with parameters (m, l), scanning offsets j, j+1, j-1, ... and
// completing each new r-tilde candidate with A2/A3. The
// second return is false when no offset produced an r with g^r = 1.
func SolveJForR(j field.Integer, m, l int, g group.Element, opts Options, t *timeout.Timeout) (field.Integer, bool, error) {
	opts = opts.withDefaults()
	D := pow2(m + l)
	if j.Sign() < 0 || j.Cmp(D) >= 0 {
		return field.Integer{}, false, ErrDomain
	}
	rBound := pow2(m)

	cands := candidate.New()
	var best field.Integer
	bestOffset := 0
	found := false
	triedOne := false
	failedAbove, failedBelow := false, false
	var prevU *linalg.Matrix[field.Integer]

	it := offsets{bound: opts.MaxOffset}
	for {
		off, ok := it.next()
		if !ok {
			break
		}
		if err := t.Check(); err != nil {
			return field.Integer{}, false, err
		}
		if found && opts.IsolatePeak && failedAbove && failedBelow {
			break
		}
		jOff := j.Add(field.NewIntInt64(int64(off)))
		if jOff.Sign() < 0 || jOff.Cmp(D) >= 0 {
			continue
		}
		rTildes, err := liftCandidates(jOff, m, l, opts.Method, &prevU, t)
		if err != nil {
			return field.Integer{}, false, err
		}
		hit := false
		for _, rTilde := range rTildes {
			if rTilde.Sign() <= 0 || rTilde.Cmp(rBound) >= 0 {
				continue
			}
			if rTilde.Cmp(field.NewIntInt64(1)) == 0 {
				// The trivial lift: the collection refuses 1, so track it
				// separately and test it once.
				if triedOne {
					continue
				}
				triedOne = true
			} else if !cands.Add(rTilde) {
				// Already subsumed: this offset re-found a known
				// candidate, so it still counts as lying on the peak.
				hit = true
				continue
			}
			if opts.AcceptMultiple {
				rPrime, ok, err := smooth.A1(g, rTilde, m, opts.C, t)
				if err != nil {
					return field.Integer{}, false, err
				}
				if ok {
					return rPrime, true, nil
				}
				continue
			}
			r, ok, err := complete(g, rTilde, m, opts.C, opts.Speculative, t)
			if err != nil {
				return field.Integer{}, false, err
			}
			if ok {
				hit = true
				if !found || r.Cmp(best) < 0 {
					debugf("orderfinding: offset %d: r = %v\n", off, r)
					best, found, bestOffset = r, true, off
					failedAbove, failedBelow = false, false
				}
			}
		}
		if found && !hit {
			if off > bestOffset {
				failedAbove = true
			} else if off < bestOffset {
				failedBelow = true
			}
		}
	}
	if !found {
		return field.Integer{}, false, nil
	}
	return best, true, nil
}

func complete(g group.Element, rTilde field.Integer, m, c int, speculative bool, t *timeout.Timeout) (field.Integer, bool, error) {
	if speculative {
		return smooth.A2(g, rTilde, m, c, t)
	}
	return smooth.A3(g, rTilde, m, c, t)
}

// liftCandidates maps one (offset-adjusted) frequency to its r-tilde
// candidates under the chosen method. For the lattice methods, prevU
// carries the row-multiple matrix of the previous offset's reduction, which
// is typically near-reduced for the neighbouring j.
func liftCandidates(j field.Integer, m, l int, method SolutionMethod, prevU **linalg.Matrix[field.Integer], t *timeout.Timeout) ([]field.Integer, error) {
	switch method {
	case ContinuedFractions:
		denoms, err := contfrac.ContinuedFractions(j, m, l, nil)
		if err != nil {
			return nil, err
		}
		if len(denoms) == 0 {
			return nil, nil
		}
		return denoms[len(denoms)-1:], nil

	case LatticeShortestVector, LatticeEnumerate:
		zero, one := field.NewIntInt64(0), field.NewIntInt64(1)
		A := linalg.NewMatrixFromRows([][]field.Integer{
			{j, one},
			{pow2(m + l + 1), zero},
		})
		red, U, err := lattice.Lagrange(A, *prevU, t)
		if err != nil {
			return nil, err
		}
		*prevU = &U
		if method == LatticeShortestVector {
			return []field.Integer{red.Row(0).At(1).Abs()}, nil
		}
		Bs, M := linalg.GramSchmidtExact(red)
		centre := linalg.NewVector([]field.Rational{
			field.NewRatInt64(0, 1), field.NewRatInt64(0, 1),
		})
		// norm <= 2^(m-1/2), i.e. norm^2 <= 2^(2m-1)
		radius2 := field.RationalFromInt(pow2(2*m - 1))
		vs, err := lattice.EnumerateRadius2(red, Bs, M, centre, radius2, t)
		if err != nil {
			return nil, err
		}
		var out []field.Integer
		for _, v := range vs {
			if v.IsZero() {
				continue
			}
			out = append(out, v.At(1).Abs())
		}
		return out, nil
	}
	return nil, fmtError("orderfinding: unknown solution method")
}
