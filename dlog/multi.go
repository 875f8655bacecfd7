package dlog

// The 2^tau generator convention for the multi-sample lattices follows the
// single-sample construction of SolveJKForD extended additively across
// samples: the first row carries every frequency j_i plus a distinguished
// last entry 2^tau, each remaining row wraps one coordinate modulo the
// sample modulus, and the sought vector u satisfies u - v =
// (err_1, ..., err_n, 2^tau * d). The last coordinate of a short vector
// near the target therefore encodes 2^tau * d directly.

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/lattice"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/numtheory"
	"github.com/ekera/quaspy/timeout"
)

// EnumerationOption selects how the candidate vector is extracted from the
// reduced multi-sample DL lattice: Babai's estimate
// only, an exact closest-vector search, or enumeration within the
// tau-scaled ball. EnumerateTrue and EnumerateBoundedByTau both enumerate
// the ball and return the first candidate that verifies against x.
type EnumerationOption int

const (
	EnumerateFalse EnumerationOption = iota
	EnumerateTrue
	EnumerateCVP
	EnumerateBoundedByTau
)

// Pair is one frequency pair (j, k) from the sampler.
type Pair struct {
	J field.Integer
	K field.Integer
}

// MultiOptions configures the multi-sample DL solvers.
type MultiOptions struct {
	// Tau scales the distinguished last lattice coordinate.
	Tau int
	// Delta is the LLL reduction parameter; the zero value means 99/100.
	Delta field.Rational
	// Precision, when non-nil, computes LLL projection factors in
	// Float(Precision) instead of exact rationals.
	Precision *uint
	// Enumerate selects the candidate-extraction strategy.
	Enumerate EnumerationOption
}

func (o MultiOptions) withDefaults() MultiOptions {
	if o.Delta.Big() == nil || o.Delta.IsZero() {
		o.Delta = field.NewRatInt64(99, 100)
	}
	return o
}

// SolveMultipleJKForD recovers a short discrete logarithm from n frequency
// pairs. The (n+1)-dimensional lattice has
// rows (j_1, ..., j_n, 2^tau) and 2^(m+l)*e_i; the target's i'th
// coordinate is truncmod(-2^m*k_i, 2^(m+l)). Candidates d come from the
// last coordinate of vectors near the target and are verified against x.
func SolveMultipleJKForD(pairs []Pair, m, l int, g, x group.Element, opts MultiOptions, tmo *timeout.Timeout) (field.Integer, bool, error) {
	return solveMultiple(pairs, m+l, l, m, pow2(m), g, x, opts, tmo)
}

// SolveMultipleJKForDGivenR is the general-logarithm analogue given the
// order r: moduli scale with 2^(m+sigma), the target's coordinates are
// truncmod(-2^(m+sigma-l)*k_i, 2^(m+sigma)), and only candidates in
// [0, r) are verified; candidates outside that range are discarded.
func SolveMultipleJKForDGivenR(pairs []Pair, m, sigma, l int, g, x group.Element, r field.Integer, opts MultiOptions, tmo *timeout.Timeout) (field.Integer, bool, error) {
	if r.Sign() <= 0 {
		return field.Integer{}, false, fmtError("dlog: order must be positive")
	}
	return solveMultiple(pairs, m+sigma, l, m+sigma-l, r, g, x, opts, tmo)
}

// solveMultiple implements both multi-sample solvers: sample moduli
// 2^modBits, frequencies k_i in [0, 2^l), target coordinates
// truncmod(-2^shift*k_i, 2^modBits), and candidate logarithms below dBound.
func solveMultiple(pairs []Pair, modBits, l, shift int, dBound field.Integer, g, x group.Element, opts MultiOptions, tmo *timeout.Timeout) (field.Integer, bool, error) {
	opts = opts.withDefaults()
	n := len(pairs)
	if n == 0 {
		return field.Integer{}, false, fmtError("dlog: no frequency pairs")
	}
	D := pow2(modBits)
	kBound := pow2(l)
	for _, p := range pairs {
		if p.J.Sign() < 0 || p.J.Cmp(D) >= 0 || p.K.Sign() < 0 || p.K.Cmp(kBound) >= 0 {
			return field.Integer{}, false, ErrDomain
		}
	}

	zero := field.NewIntInt64(0)
	rows := make([][]field.Integer, n+1)
	rows[0] = make([]field.Integer, n+1)
	for i, p := range pairs {
		rows[0][i] = p.J
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

	red, err := reduceLLL(A, opts.Delta, opts.Precision, tmo)
	if err != nil {
		return field.Integer{}, false, err
	}
	Bs, M := linalg.GramSchmidtExact(red)

	targetEntries := make([]field.Rational, n+1)
	scaleK := pow2(shift)
	for i, p := range pairs {
		ti, err := numtheory.TruncMod(scaleK.Mul(p.K).Neg(), D)
		if err != nil {
			return field.Integer{}, false, err
		}
		targetEntries[i] = field.RationalFromInt(ti)
	}
	targetEntries[n] = ratZero()
	target := linalg.NewVector(targetEntries)

	var us []linalg.Vector[field.Integer]
	switch opts.Enumerate {
	case EnumerateFalse:
		u := lattice.NearestPlane(red, Bs, target, field.RationalOps())
		us = []linalg.Vector[field.Integer]{u}
	case EnumerateCVP:
		u, err := lattice.SolveCVP(red, Bs, M, target, tmo)
		if err != nil {
			return field.Integer{}, false, err
		}
		us = []linalg.Vector[field.Integer]{u}
	case EnumerateTrue, EnumerateBoundedByTau:
		// Every coordinate of u - v is below 2^(modBits - l + tau) for
		// tau-bounded samples, and the last is below dBound*2^tau; the
		// combined ball of squared radius n*2^(2(modBits-l+tau)) plus
		// the last-coordinate term always contains u.
		errBits := modBits - l + opts.Tau
		if errBits < 0 {
			errBits = 0
		}
		lastBound := dBound.Mul(pow2(opts.Tau))
		radius2 := field.RationalFromInt(
			field.NewIntInt64(int64(n)).Mul(pow2(2 * errBits)).
				Add(lastBound.Mul(lastBound)))
		us, err = lattice.EnumerateRadius2(red, Bs, M, target, radius2, tmo)
		if err != nil {
			return field.Integer{}, false, err
		}
	}

	return verifyCandidates(us, n, opts.Tau, dBound, g, x, tmo)
}

// reduceLLL runs LLL at the requested projection-factor precision.
func reduceLLL(A linalg.Matrix[field.Integer], delta field.Rational, precision *uint, t *timeout.Timeout) (linalg.Matrix[field.Integer], error) {
	if precision == nil {
		red, _, _, err := lattice.LLLExact(A, delta, t)
		return red, err
	}
	deltaF := field.FloatFromRat(*precision, delta)
	red, _, _, err := lattice.LLL(A, deltaF, field.FloatOps(*precision), t)
	return red, err
}
