package group

import (
	"crypto/sha256"

	"github.com/ekera/quaspy/field"
)

// Simulated is an opaque element of a cyclic group of a fixed, caller-known
// order, used by tests that exercise the solvers without committing to a
// concrete group. The element's internal discrete log is only ever used by
// this type itself; solvers never observe it.
type Simulated struct {
	exponent field.Integer
	order    field.Integer
}

// NewSimulatedGenerator returns a generator of a cyclic group of the given
// order.
func NewSimulatedGenerator(order field.Integer) Simulated {
	return Simulated{exponent: field.NewIntInt64(1), order: order}
}

// simulatedFromExponent builds an element at a given exponent, normalising
// it into [0, order).
func simulatedFromExponent(exp, order field.Integer) Simulated {
	return Simulated{exponent: exp.Mod(order), order: order}
}

func (s Simulated) Mul(other Element) Element {
	o := other.(Simulated)
	return simulatedFromExponent(s.exponent.Add(o.exponent), s.order)
}

func (s Simulated) Pow(e field.Integer) Element {
	return simulatedFromExponent(s.exponent.Mul(e), s.order)
}

func (s Simulated) Equal(other Element) bool {
	o, ok := other.(Simulated)
	if !ok {
		return false
	}
	return s.exponent.Cmp(o.exponent) == 0 && s.order.Cmp(o.order) == 0
}

func (s Simulated) IsIdentity() bool {
	return s.exponent.IsZero()
}

func (s Simulated) Hash() [32]byte {
	return sha256.Sum256([]byte(s.exponent.String() + ":" + s.order.String()))
}
