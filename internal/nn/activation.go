package nn

import "gonum.org/v1/gonum/mat"

// ReLU is the Rectified Linear Unit: f(x) = max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative returns 1 for positive x and 0 otherwise.
//
// Evaluating it on max(0, z) gives the same result as evaluating it on z, so
// callers may pass either the pre- or the post-activation value.
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// apply maps f over v in place.
func apply(v *mat.VecDense, f func(float64) float64) {
	raw := v.RawVector()
	for i := 0; i < raw.N; i++ {
		raw.Data[i*raw.Inc] = f(raw.Data[i*raw.Inc])
	}
}

// derivative returns a new vector holding ReLUDerivative of each element of a.
func derivative(a *mat.VecDense) *mat.VecDense {
	d := mat.VecDenseCopyOf(a)
	apply(d, ReLUDerivative)
	return d
}
