package nn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SquaredError returns ||output - target||².
//
// This is the quantity that a single gradient step decreases. It is also what
// the trainer averages into its per-epoch loss. Both vectors must have the
// same length.
func SquaredError(output *mat.VecDense, target []float64) (float64, error) {
	if output.Len() != len(target) {
		return 0, mismatch("target", output.Len(), len(target))
	}
	diff := make([]float64, len(target))
	floats.SubTo(diff, vecData(output), target)
	return floats.Dot(diff, diff), nil
}

// vecData returns the elements of v as a contiguous slice, copying only when
// v is strided.
func vecData(v *mat.VecDense) []float64 {
	raw := v.RawVector()
	if raw.Inc == 1 {
		return raw.Data[:raw.N]
	}
	out := make([]float64, raw.N)
	for i := range out {
		out[i] = raw.Data[i*raw.Inc]
	}
	return out
}
