package group

import (
	"testing"

	circlgroup "github.com/cloudflare/circl/group"

	"github.com/ekera/quaspy/field"
)

func TestModNPowAndIdentity(t *testing.T) {
	n := field.NewIntInt64(15)
	g := NewModN(field.NewIntInt64(2), n)
	// 2 has order 4 mod 15: 2,4,8,16=1.
	p4 := g.Pow(field.NewIntInt64(4))
	if !p4.IsIdentity() {
		t.Fatalf("expected 2^4 = 1 mod 15, got %v", p4)
	}
	p1 := g.Pow(field.NewIntInt64(1))
	if !p1.Equal(g) {
		t.Fatalf("expected 2^1 = 2 mod 15")
	}
}

func TestModNNegativePower(t *testing.T) {
	n := field.NewIntInt64(15)
	g := NewModN(field.NewIntInt64(2), n)
	inv := g.Pow(field.NewIntInt64(-1))
	identity := g.Mul(inv)
	if !identity.IsIdentity() {
		t.Fatalf("g * g^-1 should be identity, got %v", identity)
	}
}

func TestSimulatedOrder(t *testing.T) {
	order := field.NewIntInt64(23)
	g := NewSimulatedGenerator(order)
	var e Element = g
	for i := int64(1); i < 22; i++ {
		e = e.Mul(g)
		if e.IsIdentity() {
			t.Fatalf("element hit identity early, at exponent %d", i+1)
		}
	}
	e = e.Mul(g)
	if !e.IsIdentity() {
		t.Fatalf("expected identity at exponent 23")
	}
}

func TestSimulatedPowMatchesRepeatedMul(t *testing.T) {
	order := field.NewIntInt64(101)
	g := NewSimulatedGenerator(order)
	viaPow := g.Pow(field.NewIntInt64(7))
	var viaMul Element = g
	for i := 0; i < 6; i++ {
		viaMul = viaMul.Mul(g)
	}
	if !viaPow.Equal(viaMul) {
		t.Fatalf("g^7 != g*g*...*g (7 times)")
	}
}

func TestECPointIdentity(t *testing.T) {
	p := ECGenerator(circlgroup.P256)
	identity := p.Pow(field.NewIntInt64(0))
	if !identity.IsIdentity() {
		t.Fatalf("g^0 should be the identity element")
	}
}
