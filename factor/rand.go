package factor

import (
	"math/big"
	"math/rand"

	"golang.org/x/crypto/sha3"

	"github.com/ekera/quaspy/field"
)

// Rand supplies the uniform integers the factor search consumes when
// sampling candidate units x. The solvers own no randomness of their own;
// callers inject a source, deterministic or otherwise.
type Rand interface {
	// UniformBelow returns an integer uniformly distributed in [0, n) for
	// n > 0.
	UniformBelow(n field.Integer) field.Integer
}

type seededRand struct {
	r *rand.Rand
}

// NewSeededRand returns a deterministic Rand for tests, seeded like a
// plain math/rand source.
func NewSeededRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) UniformBelow(n field.Integer) field.Integer {
	return field.NewInt(new(big.Int).Rand(s.r, n.Big()))
}

type shakeRand struct {
	s sha3.ShakeHash
}

// NewShakeRand returns a Rand drawing from a SHAKE-256 stream over the
// given seed: reproducible from the seed alone, with no statistical
// weaknesses at any output length.
func NewShakeRand(seed []byte) Rand {
	s := sha3.NewShake256()
	s.Write(seed)
	return &shakeRand{s: s}
}

func (s *shakeRand) UniformBelow(n field.Integer) field.Integer {
	bits := n.BitLen()
	nb := (bits + 7) / 8
	buf := make([]byte, nb)
	// rejection sampling on the top byte's surplus bits keeps the draw
	// exactly uniform
	mask := byte(0xff >> uint(8*nb-bits))
	for {
		s.s.Read(buf)
		buf[0] &= mask
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(n.Big()) < 0 {
			return field.NewInt(v)
		}
	}
}
