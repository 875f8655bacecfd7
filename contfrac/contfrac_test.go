package contfrac

import (
	"testing"

	"github.com/ekera/quaspy/field"
)

func TestContinuedFractionsMatchesReference(t *testing.T) {
	got, err := ContinuedFractions(field.NewIntInt64(155), 4, 4, nil)
	if err != nil {
		t.Fatalf("ContinuedFractions: %v", err)
	}
	want := []int64{1, 2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i, w := range want {
		if got[i].Int64() != w {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestContinuedFractionsZeroIsEmpty(t *testing.T) {
	got, err := ContinuedFractions(field.NewIntInt64(0), 4, 4, nil)
	if err != nil {
		t.Fatalf("ContinuedFractions: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestContinuedFractionsRejectsOutOfRange(t *testing.T) {
	if _, err := ContinuedFractions(field.NewIntInt64(256), 4, 4, nil); err != ErrDomain {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
	if _, err := ContinuedFractions(field.NewIntInt64(-1), 4, 4, nil); err != ErrDomain {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
}

func TestContinuedFractionsStrictlyIncreasing(t *testing.T) {
	got, err := ContinuedFractions(field.NewIntInt64(1000), 5, 5, nil)
	if err != nil {
		t.Fatalf("ContinuedFractions: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Cmp(got[i-1]) <= 0 {
			t.Fatalf("not strictly increasing: %v", got)
		}
	}
	bound := int64(1) << 5
	for _, d := range got {
		if d.Int64() >= bound {
			t.Fatalf("denominator %v exceeds default bound", d)
		}
	}
}
