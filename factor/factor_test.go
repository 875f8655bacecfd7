package factor

import (
	"errors"
	"testing"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/orderfinding"
	"github.com/ekera/quaspy/timeout"
)

func i(n int64) field.Integer { return field.NewIntInt64(n) }

func productOf(entries []Entry) field.Integer {
	p := i(1)
	for _, e := range entries {
		p = p.Mul(e.Value)
	}
	return p
}

func TestCollectionProductInvariant(t *testing.T) {
	c, err := New(i(360))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, d := range []int64{4, 2, 3} {
		c.Add(i(d))
		if productOf(c.Entries()).Cmp(i(360)) != 0 {
			t.Fatalf("product invariant broken after Add(%d): %v", d, c.Entries())
		}
	}
	if !c.IsComplete() {
		t.Fatalf("360 = 2^3*3^2*5 should be complete, got %v", c.Entries())
	}
	primes := c.Primes()
	want := []int64{2, 3, 5}
	if len(primes) != len(want) {
		t.Fatalf("primes = %v, want 2 3 5", primes)
	}
	for idx, w := range want {
		if primes[idx].Cmp(i(w)) != 0 {
			t.Fatalf("primes = %v, want 2 3 5", primes)
		}
	}
}

func TestCollectionCompositesCoprime(t *testing.T) {
	c, err := New(i(30030 * 49)) // 2*3*5*7^3*11*13
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Add(i(77))
	comps := c.Composites()
	one := i(1)
	for a := 0; a < len(comps); a++ {
		for b := a + 1; b < len(comps); b++ {
			g := comps[a].Gcd(comps[b])
			if comps[a].Cmp(comps[b]) != 0 && g.Cmp(one) != 0 {
				t.Fatalf("composite factors %v and %v share gcd %v", comps[a], comps[b], g)
			}
		}
	}
}

func TestCollectionSplitsRepeatedPrimes(t *testing.T) {
	c, err := New(i(45)) // 3^2 * 5
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Add(i(3)) {
		t.Fatalf("Add(3) should split 45")
	}
	if !c.IsComplete() {
		t.Fatalf("45 should be fully split by 3: %v", c.Entries())
	}
	if got := len(c.Entries()); got != 3 {
		t.Fatalf("expected multiset {3, 3, 5}, got %v", c.Entries())
	}
}

func TestCollectionRejectsOne(t *testing.T) {
	if _, err := New(i(1)); err != ErrDomain {
		t.Fatalf("expected ErrDomain for N = 1, got %v", err)
	}
	c, _ := New(i(15))
	if c.Add(i(1)) {
		t.Fatalf("Add(1) must be a no-op")
	}
}

func TestSolveRForFactors15(t *testing.T) {
	primes, err := SolveRForFactors(i(4), i(15), DefaultOptions(), NewSeededRand(1), nil)
	if err != nil {
		t.Fatalf("SolveRForFactors: %v", err)
	}
	if len(primes) != 2 || primes[0].Cmp(i(3)) != 0 || primes[1].Cmp(i(5)) != 0 {
		t.Fatalf("got %v, want [3 5]", primes)
	}
}

func TestSolveRForFactors143(t *testing.T) {
	primes, err := SolveRForFactors(i(60), i(143), DefaultOptions(), NewShakeRand([]byte("143")), nil)
	if err != nil {
		t.Fatalf("SolveRForFactors: %v", err)
	}
	if len(primes) != 2 || primes[0].Cmp(i(11)) != 0 || primes[1].Cmp(i(13)) != 0 {
		t.Fatalf("got %v, want [11 13]", primes)
	}
}

func TestSolveRForFactorsJointly(t *testing.T) {
	opts := DefaultOptions()
	opts.ProcessCompositeFactors = JointlyModN
	primes, err := SolveRForFactors(i(4), i(15), opts, NewSeededRand(7), nil)
	if err != nil {
		t.Fatalf("SolveRForFactors: %v", err)
	}
	if len(primes) != 2 {
		t.Fatalf("got %v, want [3 5]", primes)
	}
}

func TestSolveRForFactorsTimeout(t *testing.T) {
	elapsed := timeout.After(0)
	_, err := SolveRForFactors(i(60), i(143), DefaultOptions(), NewSeededRand(1), elapsed)
	var inc *IncompleteFactorisationError
	if !errors.As(err, &inc) {
		t.Fatalf("expected IncompleteFactorisationError, got %v", err)
	}
	if inc.Partial == nil || inc.Partial.N().Cmp(i(143)) != 0 {
		t.Fatalf("partial collection not carried: %+v", inc)
	}
	if productOf(inc.Partial.Entries()).Cmp(i(143)) != 0 {
		t.Fatalf("partial collection product invariant broken")
	}
}

func TestSolveJForFactorsModN(t *testing.T) {
	// 2 has order 4 modulo 15; the z = 1 peak at m = l = 4 is j = 64.
	primes, err := SolveJForFactorsModN(i(64), 4, 4, i(2), i(15),
		orderfinding.Options{Method: orderfinding.ContinuedFractions, MaxOffset: 5},
		DefaultOptions(), NewSeededRand(3), nil)
	if err != nil {
		t.Fatalf("SolveJForFactorsModN: %v", err)
	}
	if len(primes) != 2 || primes[0].Cmp(i(3)) != 0 || primes[1].Cmp(i(5)) != 0 {
		t.Fatalf("got %v, want [3 5]", primes)
	}
}

func TestRandUniformBelow(t *testing.T) {
	for _, rnd := range []Rand{NewSeededRand(42), NewShakeRand([]byte{1, 2, 3})} {
		n := i(1000)
		for trial := 0; trial < 200; trial++ {
			v := rnd.UniformBelow(n)
			if v.Sign() < 0 || v.Cmp(n) >= 0 {
				t.Fatalf("UniformBelow out of range: %v", v)
			}
		}
	}
}
