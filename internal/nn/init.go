package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Source supplies uniform draws in [0, 1) for weight initialization.
//
// *rand.Rand from math/rand/v2 satisfies it. Passing the generator in
// explicitly keeps initialization reproducible.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform creates a rows×cols matrix with entries drawn from U[0, scale).
//
// Entries are filled in row-major order, one draw per entry, so the same
// generator state always yields the same matrix.
func Uniform(rows, cols int, scale float64, rng Source) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() * scale
	}
	return mat.NewDense(rows, cols, data)
}

// Zeros creates a zero vector of length n.
//
// This is used for bias initialization.
func Zeros(n int) *mat.VecDense {
	return mat.NewVecDense(n, nil)
}
