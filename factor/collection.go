// Package factor drives an integer N to its full prime factorisation given
// the order r of a random group element: a Collection
// tracks the coprime split of N discovered so far, and SolveRForFactors
// feeds it gcds of x^(2^i * o) -+ 1 for randomly sampled units x until
// every factor is prime or the iteration/timeout budget runs out.
package factor

import (
	"fmt"
	"sort"

	"github.com/ekera/quaspy/field"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrDomain is returned when a Collection is built from N <= 1 or a solver
// is given a non-positive order.
const ErrDomain = fmtError("factor: argument out of domain")

// millerRabinReps is the iteration count for the probabilistic primality
// test, treated as exact.
const millerRabinReps = 30

// Entry is one factor of N together with its known primality status.
type Entry struct {
	Value field.Integer
	Prime bool
}

// Collection is a multiset of factors > 1 of N whose product is always N,
// with any two distinct composite factors coprime. It grows
// monotonically under Add and freezes once complete.
type Collection struct {
	n       field.Integer
	entries []Entry
}

// New builds a Collection holding N as its single factor. N must exceed 1.
func New(N field.Integer) (*Collection, error) {
	if N.Cmp(field.NewIntInt64(1)) <= 0 {
		return nil, ErrDomain
	}
	return &Collection{
		n:       N.Clone(),
		entries: []Entry{classify(N)},
	}, nil
}

func classify(v field.Integer) Entry {
	return Entry{Value: v, Prime: v.IsProbablyPrime(millerRabinReps)}
}

// N returns the integer whose factorisation is being collected.
func (c *Collection) N() field.Integer { return c.n }

// Entries returns a copy of the current factors with their primality
// flags. This is the documented inspection surface for partial results
// after a timeout.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IsComplete reports whether every factor is a known prime.
func (c *Collection) IsComplete() bool {
	for _, e := range c.entries {
		if !e.Prime {
			return false
		}
	}
	return true
}

// Primes returns the distinct primes found so far, ascending. Once the
// collection is complete this is the full set of prime factors of N.
func (c *Collection) Primes() []field.Integer {
	var out []field.Integer
	for _, e := range c.entries {
		if e.Prime {
			out = append(out, e.Value)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	// drop duplicates from repeated prime factors
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || out[i-1].Cmp(v) != 0 {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// Composites returns the composite factors currently held.
func (c *Collection) Composites() []field.Integer {
	var out []field.Integer
	for _, e := range c.entries {
		if !e.Prime {
			out = append(out, e.Value)
		}
	}
	return out
}

// Add splits every composite factor against d by repeated gcds and
// relabels the pieces, reporting whether anything changed.
// Adding d <= 1 or a d coprime to every composite factor is a
// no-op.
func (c *Collection) Add(d field.Integer) bool {
	d = d.Abs()
	if d.Cmp(field.NewIntInt64(1)) <= 0 {
		return false
	}
	changed := false
	var next []Entry
	for _, e := range c.entries {
		if e.Prime {
			next = append(next, e)
			continue
		}
		pieces := splitByGCD(e.Value, d)
		if len(pieces) == 1 && pieces[0].Cmp(e.Value) == 0 {
			next = append(next, e)
			continue
		}
		changed = true
		for _, p := range pieces {
			next = append(next, classify(p))
		}
	}
	if changed {
		c.entries = next
	}
	return changed
}

// splitByGCD recursively splits f along its common part with d: if
// g = gcd(f, d) is trivial (1 or f itself) f is returned whole, otherwise
// both g and f/g are split further so that repeated common factors (as in
// f = p^2*q against d = p) separate completely.
func splitByGCD(f, d field.Integer) []field.Integer {
	one := field.NewIntInt64(1)
	g := f.Gcd(d)
	if g.Cmp(one) == 0 || g.Cmp(f) == 0 {
		return []field.Integer{f}
	}
	out := splitByGCD(g, d)
	return append(out, splitByGCD(f.Quo(g), d)...)
}

// IncompleteFactorisationError is raised when the iteration budget or the
// timeout is exhausted before the collection completes; it carries the
// partial collection so the caller can inspect the factors found so far.
type IncompleteFactorisationError struct {
	Partial *Collection
}

func (e *IncompleteFactorisationError) Error() string {
	return fmt.Sprintf("factor: factorisation of %v incomplete (%d factors found)",
		e.Partial.N(), len(e.Partial.entries))
}
