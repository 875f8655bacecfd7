package orderfinding

import (
	"testing"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/timeout"
)

func i(n int64) field.Integer { return field.NewIntInt64(n) }

// optimalJ is round(2^(m+l) * z / r), the peak frequency for index z.
func optimalJ(z, r int64, m, l int) field.Integer {
	num := pow2(m + l).Mul(i(z))
	return field.RationalFromInt(num).Div(field.RationalFromInt(i(r))).RoundToInt()
}

func TestSolveJForRContinuedFractions(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	j := optimalJ(22, 23, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: ContinuedFractions, MaxOffset: 5}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(23)) != 0 {
		t.Fatalf("got (%v, %v), want 23", r, ok)
	}
}

func TestSolveJForRWithOffsets(t *testing.T) {
	// j = 1000 is ~20 off the z = 22 peak of r = 23 at m = l = 5; the
	// offset scan has to walk out to the peak before the candidate appears.
	g := group.NewSimulatedGenerator(i(23))
	r, ok, err := SolveJForR(i(1000), 5, 5, g, Options{Method: ContinuedFractions, MaxOffset: 30}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(23)) != 0 {
		t.Fatalf("got (%v, %v), want 23", r, ok)
	}
}

func TestSolveJForRLatticeShortestVector(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	j := optimalJ(22, 23, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: LatticeShortestVector, MaxOffset: 5}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(23)) != 0 {
		t.Fatalf("got (%v, %v), want 23", r, ok)
	}
}

func TestSolveJForRLatticeEnumerate(t *testing.T) {
	// the enumeration ball has squared radius 2^(2m-1), so the order must
	// stay below 2^(m-1/2): r = 21 fits at m = 5 where 23 would not
	g := group.NewSimulatedGenerator(i(21))
	j := optimalJ(10, 21, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: LatticeEnumerate, MaxOffset: 5}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(21)) != 0 {
		t.Fatalf("got (%v, %v), want 21", r, ok)
	}
}

func TestSolveJForRAcceptMultiple(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	j := optimalJ(22, 23, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: ContinuedFractions, MaxOffset: 5, AcceptMultiple: true}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok {
		t.Fatalf("expected a multiple of the order")
	}
	if r.Sign() <= 0 || !r.Mod(i(23)).IsZero() {
		t.Fatalf("%v is not a positive multiple of 23", r)
	}
	if !g.Pow(r).IsIdentity() {
		t.Fatalf("g^%v is not the identity", r)
	}
}

func TestSolveJForRSpeculative(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	j := optimalJ(22, 23, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: ContinuedFractions, MaxOffset: 5, Speculative: true}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(23)) != 0 {
		t.Fatalf("got (%v, %v), want 23", r, ok)
	}
}

func TestSolveJForRPeakIsolation(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	j := optimalJ(22, 23, 5, 5)
	r, ok, err := SolveJForR(j, 5, 5, g, Options{Method: ContinuedFractions, MaxOffset: 500, IsolatePeak: true}, nil)
	if err != nil {
		t.Fatalf("SolveJForR: %v", err)
	}
	if !ok || r.Cmp(i(23)) != 0 {
		t.Fatalf("got (%v, %v), want 23", r, ok)
	}
}

func TestSolveJForRRejectsOutOfRange(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	if _, _, err := SolveJForR(i(1024), 5, 5, g, Options{}, nil); err != ErrDomain {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
	if _, _, err := SolveJForR(i(-1), 5, 5, g, Options{}, nil); err != ErrDomain {
		t.Fatalf("expected ErrDomain for negative j, got %v", err)
	}
}

func TestSolveJForRTimeout(t *testing.T) {
	g := group.NewSimulatedGenerator(i(23))
	elapsed := timeout.After(0)
	if _, _, err := SolveJForR(i(1000), 5, 5, g, Options{}, elapsed); err != timeout.ErrTimedOut {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
}

func TestSolveMultipleJForRBoundedComplete(t *testing.T) {
	g := group.NewSimulatedGenerator(i(199))
	js := []field.Integer{
		optimalJ(57, 199, 8, 8),
		optimalJ(131, 199, 8, 8),
	}
	r, ok, err := SolveMultipleJForR(js, 8, 8, g, MultiOptions{Tau: 2, Enumerate: EnumerateBoundedByTauComplete}, nil)
	if err != nil {
		t.Fatalf("SolveMultipleJForR: %v", err)
	}
	if !ok || r.Cmp(i(199)) != 0 {
		t.Fatalf("got (%v, %v), want 199", r, ok)
	}
}

func TestSolveMultipleJForRBasisRows(t *testing.T) {
	// With r | 2^(m+l) the peak frequencies are exact and the short vector
	// (0, 0, r*2^tau) must surface as a row of the LLL-reduced basis.
	g := group.NewSimulatedGenerator(i(32))
	js := []field.Integer{
		optimalJ(3, 32, 8, 8),
		optimalJ(5, 32, 8, 8),
	}
	r, ok, err := SolveMultipleJForR(js, 8, 8, g, MultiOptions{Tau: 2, Enumerate: EnumerateFalse}, nil)
	if err != nil {
		t.Fatalf("SolveMultipleJForR: %v", err)
	}
	if !ok || r.Cmp(i(32)) != 0 {
		t.Fatalf("got (%v, %v), want 32", r, ok)
	}
}

func TestSolveMultipleJForRSVP(t *testing.T) {
	g := group.NewSimulatedGenerator(i(32))
	js := []field.Integer{
		optimalJ(3, 32, 8, 8),
		optimalJ(5, 32, 8, 8),
	}
	r, ok, err := SolveMultipleJForR(js, 8, 8, g, MultiOptions{Tau: 2, Enumerate: EnumerateSVP}, nil)
	if err != nil {
		t.Fatalf("SolveMultipleJForR: %v", err)
	}
	if !ok || r.Cmp(i(32)) != 0 {
		t.Fatalf("got (%v, %v), want 32", r, ok)
	}
}

func TestOffsetsOrder(t *testing.T) {
	it := offsets{bound: 2}
	var got []int
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []int{0, 1, -1, 2, -2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
