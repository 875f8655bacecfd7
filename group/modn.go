package group

import (
	"crypto/sha256"
	"math/big"

	"github.com/ekera/quaspy/field"
)

// ModN is an element of the multiplicative group (Z/NZ)*.
type ModN struct {
	v field.Integer
	n field.Integer
}

// NewModN wraps v as an element of (Z/NZ)*; v is reduced mod n on entry.
func NewModN(v, n field.Integer) ModN {
	return ModN{v: v.Mod(n), n: n}
}

func (m ModN) Mul(other Element) Element {
	o := other.(ModN)
	return NewModN(m.v.Mul(o.v), m.n)
}

func (m ModN) Pow(e field.Integer) Element {
	base := m.v.Big()
	mod := m.n.Big()
	exp := e.Big()
	if exp.Sign() < 0 {
		inv, ok := m.v.ModInverse(m.n)
		if !ok {
			// contract violation: caller raised a non-invertible base to a
			// negative power. The group contract assumes v is a unit.
			panic("group: ModN base is not invertible mod N")
		}
		base = inv.Big()
		exp = new(big.Int).Neg(exp)
	}
	r := new(big.Int).Exp(base, exp, mod)
	return ModN{v: field.NewInt(r), n: m.n}
}

func (m ModN) Equal(other Element) bool {
	o, ok := other.(ModN)
	if !ok {
		return false
	}
	return m.v.Cmp(o.v) == 0 && m.n.Cmp(o.n) == 0
}

func (m ModN) IsIdentity() bool {
	return m.v.Cmp(field.NewIntInt64(1)) == 0
}

func (m ModN) Hash() [32]byte {
	return sha256.Sum256([]byte(m.v.String() + ":" + m.n.String()))
}
