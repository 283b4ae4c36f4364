package nn

import "gonum.org/v1/gonum/mat"

// linear computes the affine map z = x·W + b for a single sample.
//
// x has length in, W has shape [in, out] and b has length out. Row-vector
// times matrix is expressed as Wᵀ·x so gonum can run it as one matrix-vector
// product. Shapes must already be validated; gonum panics otherwise.
func linear(x mat.Vector, w mat.Matrix, b mat.Vector) *mat.VecDense {
	var z mat.VecDense
	z.MulVec(w.T(), x)
	z.AddVec(&z, b)
	return &z
}
