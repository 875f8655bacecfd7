package numtheory

import (
	"testing"

	"github.com/ekera/quaspy/field"
)

func i64(v int64) field.Integer { return field.NewIntInt64(v) }

func TestTruncModSymmetricInterval(t *testing.T) {
	cases := []struct{ x, N, want int64 }{
		{0, 7, 0},
		{3, 7, 3},
		{4, 7, -3},
		{-4, 7, 3},
		{10, 4, -2},
		{6, 4, -2},
	}
	for _, c := range cases {
		got, err := TruncMod(i64(c.x), i64(c.N))
		if err != nil {
			t.Fatalf("TruncMod(%d,%d): %v", c.x, c.N, err)
		}
		if got.Int64() != c.want {
			t.Fatalf("TruncMod(%d,%d) = %d, want %d", c.x, c.N, got.Int64(), c.want)
		}
		// property: congruent mod N
		diff := got.Sub(i64(c.x)).Mod(i64(c.N))
		if !diff.IsZero() {
			t.Fatalf("TruncMod(%d,%d) not congruent: got %d", c.x, c.N, got.Int64())
		}
	}
}

func TestTruncModRejectsNonPositiveModulus(t *testing.T) {
	if _, err := TruncMod(i64(1), i64(0)); err == nil {
		t.Fatalf("expected error for N=0")
	}
	if _, err := TruncMod(i64(1), i64(-5)); err == nil {
		t.Fatalf("expected error for N<0")
	}
}

func TestKappa(t *testing.T) {
	cases := []struct {
		x    int64
		want int
	}{{1, 0}, {2, 1}, {4, 2}, {12, 2}, {1024, 10}, {1025, 0}}
	for _, c := range cases {
		if got := Kappa(i64(c.x)); got != c.want {
			t.Fatalf("Kappa(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestCRT(t *testing.T) {
	values := []field.Integer{i64(2), i64(3), i64(2)}
	moduli := []field.Integer{i64(3), i64(5), i64(7)}
	v, err := CRT(values, moduli)
	if err != nil {
		t.Fatalf("CRT: %v", err)
	}
	for i := range values {
		if v.Mod(moduli[i]).Cmp(values[i]) != 0 {
			t.Fatalf("CRT result %d not congruent to %d mod %d", v.Int64(), values[i].Int64(), moduli[i].Int64())
		}
	}
	prod := i64(3 * 5 * 7)
	if v.Sign() < 0 || v.Cmp(prod) >= 0 {
		t.Fatalf("CRT result %d out of range [0,%d)", v.Int64(), prod.Int64())
	}
}

func TestCRTRejectsNonCoprimeModuli(t *testing.T) {
	values := []field.Integer{i64(1), i64(1)}
	moduli := []field.Integer{i64(4), i64(6)}
	if _, err := CRT(values, moduli); err == nil {
		t.Fatalf("expected error for non-coprime moduli")
	}
}

func TestIsBSmooth(t *testing.T) {
	cases := []struct {
		d, B int64
		want bool
	}{
		{1, 2, true},
		{8, 8, true},  // 2^3 = 8 <= 8
		{8, 7, false}, // 2^3 = 8 > 7
		{12, 4, true}, // 12 = 4*3, both <= 4
		{12, 3, false},
		{17, 17, true},
		{17, 16, false},
	}
	for _, c := range cases {
		got, err := IsBSmooth(i64(c.d), i64(c.B))
		if err != nil {
			t.Fatalf("IsBSmooth(%d,%d): %v", c.d, c.B, err)
		}
		if got != c.want {
			t.Fatalf("IsBSmooth(%d,%d) = %v, want %v", c.d, c.B, got, c.want)
		}
	}
}

func TestPrimeRange(t *testing.T) {
	got := PrimeRange(20)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19}
	if len(got) != len(want) {
		t.Fatalf("PrimeRange(20) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrimeRange(20) = %v, want %v", got, want)
		}
	}
}

func TestPrimePowerProduct(t *testing.T) {
	// primes < 10: 2,3,5,7; largest powers <= 10: 8,9,5,7
	got := PrimePowerProduct(10)
	want := i64(8 * 9 * 5 * 7)
	if got.Cmp(want) != 0 {
		t.Fatalf("PrimePowerProduct(10) = %s, want %s", got.String(), want.String())
	}
}
