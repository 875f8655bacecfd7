// Package dlog recovers discrete logarithms from frequency pairs (j, k)
// sampled by the Ekerå-Håstad and Ekerå quantum circuits.
// Short logarithms come out of a 2D Lagrange-reduced lattice searched
// around a target vector; general logarithms given the order r come out of
// a small modular grid search; both have multi-sample variants built on an
// (n+1)-dimensional LLL-reduced lattice.
package dlog

import (
	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/lattice"
	"github.com/ekera/quaspy/linalg"
	"github.com/ekera/quaspy/numtheory"
	"github.com/ekera/quaspy/timeout"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrDomain is returned when a frequency lies outside its sampled range.
const ErrDomain = fmtError("dlog: frequency out of range")

func pow2(e int) field.Integer {
	return field.NewIntInt64(1).Lsh(uint(e))
}

func ratZero() field.Rational { return field.NewRatInt64(0, 1) }

// IsTBalanced reports whether the Lagrange-reduced 2x2 basis B satisfies
// ||b2||^2 <= 2^(2t) * ||b1||^2, i.e. whether its two rows are within a
// factor 2^t of each other in norm.
func IsTBalanced(B linalg.Matrix[field.Integer], t int) bool {
	zero := field.NewIntInt64(0)
	n1 := linalg.Norm2(B.Row(0), zero)
	n2 := linalg.Norm2(B.Row(1), zero)
	return n2.Cmp(n1.Mul(pow2(2*t))) <= 0
}

// MinimalBalancedT returns the smallest t >= 0 for which B is t-balanced,
// used when the caller leaves t unspecified.
func MinimalBalancedT(B linalg.Matrix[field.Integer]) int {
	zero := field.NewIntInt64(0)
	if linalg.Norm2(B.Row(0), zero).IsZero() {
		return 0
	}
	for t := 0; ; t++ {
		if IsTBalanced(B, t) {
			return t
		}
	}
}

// SolveJKForD recovers a short discrete logarithm d with x = g^d and
// d < 2^m from a single frequency pair (j, k) with j in [0, 2^(m+l)) and k
// in [0, 2^l). The lattice L^tau spanned by
// (j, 2^tau) and (2^(m+l), 0) is Lagrange-reduced and searched within a
// ball around the target v = (truncmod(-2^m*k, 2^(m+l)), 0); each vector u
// in the ball proposes d = u_2 / 2^tau, which is verified against x. tParam
// bounds the first-coordinate error at 2^(m-l+t); when nil, the minimal t
// for which the reduced lattice is t-balanced is used.
func SolveJKForD(j, k field.Integer, m, l int, g, x group.Element, tau int, tParam *int, tmo *timeout.Timeout) (field.Integer, bool, error) {
	D := pow2(m + l)
	if j.Sign() < 0 || j.Cmp(D) >= 0 {
		return field.Integer{}, false, ErrDomain
	}
	if k.Sign() < 0 || k.Cmp(pow2(l)) >= 0 {
		return field.Integer{}, false, ErrDomain
	}

	zero := field.NewIntInt64(0)
	A := linalg.NewMatrixFromRows([][]field.Integer{
		{j, pow2(tau)},
		{D, zero},
	})
	red, _, err := lattice.Lagrange(A, nil, tmo)
	if err != nil {
		return field.Integer{}, false, err
	}

	t := 0
	if tParam != nil {
		t = *tParam
	} else {
		t = MinimalBalancedT(red)
	}

	v0, err := numtheory.TruncMod(pow2(m).Mul(k).Neg(), D)
	if err != nil {
		return field.Integer{}, false, err
	}
	target := linalg.NewVector([]field.Rational{
		field.RationalFromInt(v0), ratZero(),
	})

	// u - v = (truncmod(d*j + 2^m*k, 2^(m+l)), d*2^tau): the first
	// coordinate is below 2^(m-l+t) for a t-good pair and the second below
	// 2^(m+tau) always.
	errBits := m - l + t
	if errBits < 0 {
		errBits = 0
	}
	radius2 := field.RationalFromInt(
		pow2(2 * (m + tau)).Add(pow2(2 * errBits)))
	Bs, M := linalg.GramSchmidtExact(red)
	us, err := lattice.EnumerateRadius2(red, Bs, M, target, radius2, tmo)
	if err != nil {
		return field.Integer{}, false, err
	}

	return verifyCandidates(us, 1, tau, pow2(m), g, x, tmo)
}

// verifyCandidates derives d = u[coord] / 2^tau from each enumerated vector
// and returns the first d in [0, bound) with g^d = x. The hash of x is
// compared before the (potentially costly) group equality.
func verifyCandidates(us []linalg.Vector[field.Integer], coord, tau int, bound field.Integer, g, x group.Element, tmo *timeout.Timeout) (field.Integer, bool, error) {
	scale := pow2(tau)
	xh := x.Hash()
	for _, u := range us {
		if err := tmo.Check(); err != nil {
			return field.Integer{}, false, err
		}
		w := u.At(coord)
		if w.Sign() < 0 || !w.Mod(scale).IsZero() {
			continue
		}
		d := w.Quo(scale)
		if d.Cmp(bound) >= 0 {
			continue
		}
		cand := g.Pow(d)
		if cand.Hash() == xh && cand.Equal(x) {
			return d, true, nil
		}
	}
	return field.Integer{}, false, nil
}
