package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/linalg"
)

// toDense converts an integer basis to a float64 mat.Dense. Entries that do
// not fit a float64 lose precision; the diagnostics below are estimates, not
// part of the exact-arithmetic path.
func toDense(B linalg.Matrix[field.Integer]) *mat.Dense {
	n, d := B.Dims()
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, B.Row(i).At(j).Float64())
		}
	}
	return out
}

// Volume estimates the lattice volume sqrt(det(B*B^T)) of an n x d basis.
func Volume(B linalg.Matrix[field.Integer]) float64 {
	n, _ := B.Dims()
	if n == 0 {
		return 1
	}
	D := toDense(B)
	gram := mat.NewDense(n, n, nil)
	gram.Mul(D, D.T())
	det, sign := mat.LogDet(gram)
	if sign <= 0 {
		return 0
	}
	return math.Exp(det / 2)
}

// GaussianHeuristic estimates the norm of the shortest non-zero lattice
// vector as sqrt(n/(2*pi*e)) * vol^(1/n). Tests and benchmarks use it to
// sanity-check the size of LLL and enumeration output; nothing on the
// solver path depends on it.
func GaussianHeuristic(B linalg.Matrix[field.Integer]) float64 {
	n, _ := B.Dims()
	if n == 0 {
		return 0
	}
	vol := Volume(B)
	if vol <= 0 {
		return 0
	}
	nf := float64(n)
	return math.Sqrt(nf/(2*math.Pi*math.E)) * math.Pow(vol, 1/nf)
}

// OrthogonalityDefect is the product of row norms divided by the volume; 1
// for an orthogonal basis, growing with how skewed the basis is. Useful for
// eyeballing how much an LLL pass improved a basis.
func OrthogonalityDefect(B linalg.Matrix[field.Integer]) float64 {
	n, _ := B.Dims()
	vol := Volume(B)
	if vol <= 0 {
		return math.Inf(1)
	}
	prod := 1.0
	for i := 0; i < n; i++ {
		r := B.Row(i)
		s := 0.0
		for j := 0; j < r.Len(); j++ {
			v := r.At(j).Float64()
			s += v * v
		}
		prod *= math.Sqrt(s)
	}
	return prod / vol
}
