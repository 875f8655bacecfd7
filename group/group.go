// Package group defines the opaque cyclic-group-element contract the
// solvers in orderfinding/dlog/smooth are parameterised over: multiply,
// power by a (possibly negative) integer exponent, equality (including
// against the identity), and a hash compatible with equality. Three
// concrete variants satisfy it: ModN (integers mod N), ECPoint (a
// short-Weierstrass curve point via circl/group), and Simulated (an
// order-parameterised element for tests that never commit to a concrete
// group). Groups are written multiplicatively even when the underlying
// operation is additive.
package group

import "github.com/ekera/quaspy/field"

// Element is the opaque group-element contract. Solvers
// never inspect a concrete type; they only call these methods.
type Element interface {
	// Mul returns the group product of the receiver and other.
	Mul(other Element) Element
	// Pow returns the receiver raised to the (possibly negative) integer
	// exponent e.
	Pow(e field.Integer) Element
	// Equal reports group-element equality. Implementations accept
	// comparison against the identity represented as a literal 1 via
	// IsIdentity rather than requiring Equal(identity) to be called.
	Equal(other Element) bool
	// IsIdentity reports whether the receiver is the group identity.
	IsIdentity() bool
	// Hash returns a stable digest compatible with Equal: Equal(a,b) implies
	// Hash(a) == Hash(b).
	Hash() [32]byte
}
