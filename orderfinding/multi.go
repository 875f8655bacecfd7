package orderfinding

import (
	"github.com/ekera/quaspy/candidate"
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/lattice"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/timeout"
)

// EnumerationOption selects how candidate vectors are extracted from the
// LLL-reduced multi-sample lattice. EnumerateFalse reads
// the reduced basis rows only; EnumerateTrue and EnumerateBoundedByTauComplete
// enumerate the tau-scaled ball exhaustively; EnumerateBoundedByTau stops at
// the first candidate that completes to an order; EnumerateSVP solves the
// shortest-vector problem exactly.
type EnumerationOption int

const (
	EnumerateFalse EnumerationOption = iota
	EnumerateTrue
	EnumerateSVP
	EnumerateBoundedByTau
	EnumerateBoundedByTauComplete
)

// MultiOptions configures SolveMultipleJForR.
type MultiOptions struct {
	// C is the cm-smoothness multiplier. Defaults to 1.
	C int
	// Tau scales the distinguished last lattice coordinate; the short
	// vector's last coordinate is 2^Tau * r-tilde.
	Tau int
	// Delta is the LLL reduction parameter; the zero value means 99/100.
	Delta field.Rational
	// Precision, when non-nil, computes the LLL projection factors in
	// Float(Precision) instead of exact rationals.
	Precision *uint
	// Enumerate selects the candidate-extraction strategy.
	Enumerate EnumerationOption
	// Speculative selects A2 over A3 for candidate completion.
	Speculative bool
}

func (o MultiOptions) withDefaults() MultiOptions {
	if o.C == 0 {
		o.C = 1
	}
	if o.Delta.Big() == nil || o.Delta.IsZero() {
		o.Delta = field.NewRatInt64(99, 100)
	}
	return o
}

// SolveMultipleJForR combines n frequency samples in the (n+1)-dimensional
// lattice with rows (j_1, ..., j_n, 2^tau) and 2^(m+l)*e_i, LLL-reduces it,
// and extracts r-tilde candidates from the last coordinate of short
// vectors. Each candidate is completed with A2/A3; the smallest completed
// order wins.
func SolveMultipleJForR(js []field.Integer, m, l int, g group.Element, opts MultiOptions, t *timeout.Timeout) (field.Integer, bool, error) {
	opts = opts.withDefaults()
	n := len(js)
	if n == 0 {
		return field.Integer{}, false, fmtError("orderfinding: no frequency samples")
	}
	D := pow2(m + l)
	for _, j := range js {
		if j.Sign() < 0 || j.Cmp(D) >= 0 {
			return field.Integer{}, false, ErrDomain
		}
	}

	zero := field.NewIntInt64(0)
	rows := make([][]field.Integer, n+1)
	rows[0] = make([]field.Integer, n+1)
	for i, j := range js {
		rows[0][i] = j
	}
	rows[0][n] = pow2(opts.Tau)
	for i := 1; i <= n; i++ {
		rows[i] = make([]field.Integer, n+1)
		for k := range rows[i] {
			rows[i][k] = zero
		}
		rows[i][i-1] = D
	}
	A := linalg.NewMatrixFromRows(rows)

	red, err := reduceLLL(A, opts.Delta, opts.Precision, t)
	if err != nil {
		return field.Integer{}, false, err
	}

	scale := pow2(opts.Tau)
	rBound := pow2(m)
	cands := candidate.New()
	var best field.Integer
	found := false

	tryVector := func(v linalg.Vector[field.Integer]) (bool, error) {
		last := v.At(v.Len() - 1).Abs()
		if last.IsZero() || !last.Mod(scale).IsZero() {
			return false, nil
		}
		rTilde := last.Quo(scale)
		if rTilde.Sign() <= 0 || rTilde.Cmp(rBound) >= 0 || !cands.Add(rTilde) {
			return false, nil
		}
		r, ok, err := complete(g, rTilde, m, opts.C, opts.Speculative, t)
		if err != nil || !ok {
			return false, err
		}
		if !found || r.Cmp(best) < 0 {
			best, found = r, true
		}
		return true, nil
	}

	switch opts.Enumerate {
	case EnumerateFalse:
		for i := 0; i <= n; i++ {
			if _, err := tryVector(red.Row(i)); err != nil {
				return field.Integer{}, false, err
			}
		}

	case EnumerateSVP:
		Bs, M := linalg.GramSchmidtExact(red)
		sv, err := lattice.SolveSVP(red, Bs, M, t)
		if err != nil {
			return field.Integer{}, false, err
		}
		if _, err := tryVector(sv); err != nil {
			return field.Integer{}, false, err
		}

	case EnumerateTrue, EnumerateBoundedByTau, EnumerateBoundedByTauComplete:
		Bs, M := linalg.GramSchmidtExact(red)
		origin := make([]field.Rational, n+1)
		for i := range origin {
			origin[i] = field.NewRatInt64(0, 1)
		}
		// The sought vector is (r*j_1 mod 2^(m+l), ..., r*2^tau) with every
		// coordinate below 2^(m+tau), so a ball of squared radius
		// (n+1)*2^(2(m+tau)) always contains it.
		radius2 := field.RationalFromInt(
			field.NewIntInt64(int64(n + 1)).Mul(pow2(2 * (m + opts.Tau))))
		vs, err := lattice.EnumerateRadius2(red, Bs, M, linalg.NewVector(origin), radius2, t)
		if err != nil {
			return field.Integer{}, false, err
		}
		for _, v := range vs {
			hit, err := tryVector(v)
			if err != nil {
				return field.Integer{}, false, err
			}
			if hit && opts.Enumerate == EnumerateBoundedByTau {
				return best, true, nil
			}
		}
	}

	if !found {
		return field.Integer{}, false, nil
	}
	return best, true, nil
}

// reduceLLL runs LLL at the requested projection-factor precision and
// returns the reduced integer basis.
func reduceLLL(A linalg.Matrix[field.Integer], delta field.Rational, precision *uint, t *timeout.Timeout) (linalg.Matrix[field.Integer], error) {
	if precision == nil {
		red, _, _, err := lattice.LLLExact(A, delta, t)
		return red, err
	}
	deltaF := field.FloatFromRat(*precision, delta)
	red, _, _, err := lattice.LLL(A, deltaF, field.FloatOps(*precision), t)
	return red, err
}
