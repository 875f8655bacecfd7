// Package candidate implements CandidateCollection, the divisibility-reduced
// set of r-tilde candidates produced while scanning offsets in the
// order-finding and discrete-log solvers: a small vector of minimal
// generators under the "some member divides it" containment predicate.
package candidate

import "github.com/ekera/quaspy/field"

// Collection is a set of positive Integers closed under "no element divides
// another": it represents the ideal generated by its members under
// divisibility.
type Collection struct {
	members []field.Integer
}

// New returns an empty Collection.
func New() *Collection {
	return &Collection{}
}

// Add inserts c, first discarding any stored element divisible by c, then
// inserting c only if no remaining element divides c. Reports whether the
// collection changed. Add(1) is a no-op: 1 would subsume the whole set.
func (c *Collection) Add(x field.Integer) bool {
	if x.Cmp(field.NewIntInt64(1)) <= 0 {
		return false
	}
	for _, s := range c.members {
		if divides(s, x) {
			return false
		}
	}
	kept := c.members[:0:0]
	for _, s := range c.members {
		if !divides(x, s) {
			kept = append(kept, s)
		}
	}
	kept = append(kept, x)
	c.members = kept
	return true
}

// Contains reports whether some stored element divides c.
func (c *Collection) Contains(x field.Integer) bool {
	for _, s := range c.members {
		if divides(s, x) {
			return true
		}
	}
	return false
}

// Len returns the number of minimal generators currently stored.
func (c *Collection) Len() int { return len(c.members) }

// Members returns a copy of the minimal generator set, in insertion order
// (the set is deterministic but no particular ordering is promised beyond
// that).
func (c *Collection) Members() []field.Integer {
	out := make([]field.Integer, len(c.members))
	copy(out, c.members)
	return out
}

func divides(a, b field.Integer) bool {
	if a.IsZero() {
		return b.IsZero()
	}
	return b.Mod(a).IsZero()
}
