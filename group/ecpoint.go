package group

import (
	"crypto/sha256"

	circlgroup "github.com/cloudflare/circl/group"

	"github.com/ekera/quaspy/field"
)

// ECPoint is a short-Weierstrass curve point exposed multiplicatively,
// backed by github.com/cloudflare/circl/group. The curve is fixed at
// construction time so Mul/Pow never need to check group compatibility
// beyond what circl itself enforces.
type ECPoint struct {
	g circlgroup.Group
	e circlgroup.Element
}

// NewECPoint wraps a circl group element for the given curve group.
func NewECPoint(g circlgroup.Group, e circlgroup.Element) ECPoint {
	return ECPoint{g: g, e: e}
}

// ECGenerator returns the generator of g as an ECPoint.
func ECGenerator(g circlgroup.Group) ECPoint {
	return ECPoint{g: g, e: g.Generator()}
}

func (p ECPoint) Mul(other Element) Element {
	o := other.(ECPoint)
	r := p.g.NewElement()
	r.Add(p.e, o.e)
	return ECPoint{g: p.g, e: r}
}

func (p ECPoint) Pow(exp field.Integer) Element {
	s := p.g.NewScalar()
	s.SetBigInt(exp.Abs().Big())
	r := p.g.NewElement().Mul(p.e, s)
	if exp.Sign() < 0 {
		r = p.g.NewElement().Neg(r)
	}
	return ECPoint{g: p.g, e: r}
}

func (p ECPoint) Equal(other Element) bool {
	o, ok := other.(ECPoint)
	if !ok {
		return false
	}
	return p.e.IsEqual(o.e)
}

func (p ECPoint) IsIdentity() bool {
	return p.e.IsIdentity()
}

func (p ECPoint) Hash() [32]byte {
	b, err := p.e.MarshalBinary()
	if err != nil {
		panic("group: ECPoint failed to marshal for hashing: " + err.Error())
	}
	return sha256.Sum256(b)
}
