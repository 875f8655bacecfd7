// Package contfrac extracts convergent denominators from the continued
// fraction expansion of a frequency sample j / 2^(m+l), bounded by a
// caller-supplied denominator. The partial quotients come out of the same
// Euclidean remainder sequence an extended-GCD walk produces.
package contfrac

import "github.com/ekera/quaspy/field"

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrDomain is returned when j is outside [0, 2^(m+l)).
const ErrDomain = fmtError("contfrac: j out of range [0, 2^(m+l))")

// ContinuedFractions returns the strictly increasing sequence of denominators
// of the convergents of j / 2^(m+l) that are strictly less than bound. If
// bound is nil, it defaults to floor(2^((m+l)/2)).
func ContinuedFractions(j field.Integer, m, l int, bound *field.Integer) ([]field.Integer, error) {
	if m+l < 0 {
		return nil, ErrDomain
	}
	denomTotal := field.NewIntInt64(1).Lsh(uint(m + l))
	if j.Sign() < 0 || j.Cmp(denomTotal) >= 0 {
		return nil, ErrDomain
	}

	var bnd field.Integer
	if bound != nil {
		bnd = *bound
	} else {
		bnd, _ = denomTotal.Sqrt()
	}

	var out []field.Integer
	if j.IsZero() {
		return out, nil
	}

	// j/2^(m+l) expands as [0; a1, a2, ...], the a_k being exactly the
	// partial quotients of the Euclidean algorithm run on (2^(m+l), j).
	// Convergent denominators follow q_{-1}=0, q_0=1, q_k = a_k*q_{k-1}+q_{k-2}.
	a, b := denomTotal, j
	qPrev2 := field.NewIntInt64(0)
	qPrev1 := field.NewIntInt64(1)
	for !b.IsZero() {
		quot, rem := a.DivMod(b)
		qCur := quot.Mul(qPrev1).Add(qPrev2)
		if qCur.Cmp(bnd) < 0 {
			out = append(out, qCur)
		} else {
			break
		}
		qPrev2, qPrev1 = qPrev1, qCur
		a, b = b, rem
	}
	return out, nil
}
