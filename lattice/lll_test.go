package lattice

import (
	"testing"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
)

func TestLLLExactReducesKnownBasis(t *testing.T) {
	B := linalg.NewMatrix([]linalg.Vector[field.Integer]{
		vec2(1, 1),
		vec2(1, 0),
	})
	delta := field.NewRatInt64(99, 100)
	red, _, _, err := LLLExact(B, delta, nil)
	if err != nil {
		t.Fatalf("LLLExact: %v", err)
	}
	if !IsLLLReduced(red, delta) {
		t.Fatalf("result not LLL-reduced: %+v", red)
	}
}

func TestLLLExactPreservesLattice(t *testing.T) {
	B := linalg.NewMatrix([]linalg.Vector[field.Integer]{
		linalg.NewVector([]field.Integer{field.NewIntInt64(15), field.NewIntInt64(3), field.NewIntInt64(13)}),
		linalg.NewVector([]field.Integer{field.NewIntInt64(8), field.NewIntInt64(6), field.NewIntInt64(9)}),
		linalg.NewVector([]field.Integer{field.NewIntInt64(20), field.NewIntInt64(1), field.NewIntInt64(2)}),
	})
	delta := field.NewRatInt64(3, 4)
	red, Bs, M, err := LLLExact(B, delta, nil)
	if err != nil {
		t.Fatalf("LLLExact: %v", err)
	}
	if !IsLLLReduced(red, delta) {
		t.Fatalf("result not LLL-reduced: %+v", red)
	}
	if det3(red).Abs().Cmp(det3(B).Abs()) != 0 {
		t.Fatalf("row span changed: |det| %v -> %v", det3(B).Abs(), det3(red).Abs())
	}
	// reconstructing each row from Bs and M must reproduce the reduced basis.
	n, _ := red.Dims()
	zero := field.NewRatInt64(0, 1)
	for i := 0; i < n; i++ {
		acc := linalg.Convert(Bs.Row(i), func(r field.Rational) field.Rational { return r })
		for j := 0; j < i; j++ {
			acc = acc.Add(Bs.Row(j).Scale(M.Row(i).At(j)))
		}
		got := red.Row(i)
		for k := 0; k < got.Len(); k++ {
			diff := acc.At(k).Sub(field.RationalFromInt(got.At(k)))
			if diff.Cmp(zero) != 0 {
				t.Fatalf("row %d does not reconstruct from Bs/M: got diff %v at %d", i, diff, k)
			}
		}
	}
}

func TestLLLHandlesEmptyBasis(t *testing.T) {
	B := linalg.Matrix[field.Integer]{}
	red, _, _, err := LLLExact(B, field.NewRatInt64(3, 4), nil)
	if err != nil {
		t.Fatalf("LLLExact: %v", err)
	}
	n, _ := red.Dims()
	if n != 0 {
		t.Fatalf("expected empty basis, got %+v", red)
	}
}

func det3(B linalg.Matrix[field.Integer]) field.Integer {
	a := func(i, j int) field.Integer { return B.Row(i).At(j) }
	t1 := a(0, 0).Mul(a(1, 1).Mul(a(2, 2)).Sub(a(1, 2).Mul(a(2, 1))))
	t2 := a(0, 1).Mul(a(1, 0).Mul(a(2, 2)).Sub(a(1, 2).Mul(a(2, 0))))
	t3 := a(0, 2).Mul(a(1, 0).Mul(a(2, 1)).Sub(a(1, 1).Mul(a(2, 0))))
	return t1.Sub(t2).Add(t3)
}

func TestLLLRoundTrip(t *testing.T) {
	B := linalg.NewMatrixFromRows([][]field.Integer{
		{field.NewIntInt64(1), field.NewIntInt64(1), field.NewIntInt64(1)},
		{field.NewIntInt64(-1), field.NewIntInt64(0), field.NewIntInt64(2)},
		{field.NewIntInt64(3), field.NewIntInt64(5), field.NewIntInt64(6)},
	})
	delta := field.NewRatInt64(99, 100)
	red, Bs, M, err := LLLExact(B, delta, nil)
	if err != nil {
		t.Fatalf("LLLExact: %v", err)
	}
	if !IsLLLReduced(red, delta) {
		t.Fatalf("result not LLL-reduced: %+v", red)
	}
	if det3(red).Abs().Cmp(det3(B).Abs()) != 0 {
		t.Fatalf("row span changed: |det| %v -> %v", det3(B).Abs(), det3(red).Abs())
	}
	// the first reduced row is within 2^(n-1) of the shortest vector in
	// squared norm
	shortest, err := SolveSVP(red, Bs, M, nil)
	if err != nil {
		t.Fatalf("SolveSVP: %v", err)
	}
	zero := field.NewIntInt64(0)
	b1n := linalg.Norm2(red.Row(0), zero)
	sn := linalg.Norm2(shortest, zero)
	if b1n.Cmp(field.NewIntInt64(4).Mul(sn)) > 0 {
		t.Fatalf("first row norm^2 %v exceeds 4 * shortest norm^2 %v", b1n, sn)
	}
}

func TestLLLFloatPrecisionAgreesWithExact(t *testing.T) {
	B := linalg.NewMatrixFromRows([][]field.Integer{
		{field.NewIntInt64(15), field.NewIntInt64(3), field.NewIntInt64(13)},
		{field.NewIntInt64(8), field.NewIntInt64(6), field.NewIntInt64(9)},
		{field.NewIntInt64(20), field.NewIntInt64(1), field.NewIntInt64(2)},
	})
	deltaF := field.FloatFromRat(128, field.NewRatInt64(3, 4))
	red, _, _, err := LLL(B, deltaF, field.FloatOps(128), nil)
	if err != nil {
		t.Fatalf("LLL: %v", err)
	}
	if !IsLLLReduced(red, field.NewRatInt64(3, 4)) {
		t.Fatalf("float-precision reduction not LLL-reduced: %+v", red)
	}
}
