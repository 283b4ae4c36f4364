package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestReLU(t *testing.T) {
	tests := []struct {
		in, relu, deriv float64
	}{
		{-2, 0, 0},
		{-1e-12, 0, 0},
		{0, 0, 0},
		{1e-12, 1e-12, 1},
		{3.5, 3.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.relu, ReLU(tt.in), "ReLU(%v)", tt.in)
		assert.Equal(t, tt.deriv, ReLUDerivative(tt.in), "ReLUDerivative(%v)", tt.in)
	}
}

// The derivative taken after activation must match the one taken before it.
func TestReLUDerivative_PostActivationIsExact(t *testing.T) {
	for _, z := range []float64{-3, -0.5, 0, 0.25, 7} {
		assert.Equal(t, ReLUDerivative(z), ReLUDerivative(ReLU(z)), "z=%v", z)
	}
}

func TestApply_StridedVector(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		-1, 5,
		2, -6,
		-3, 7,
	})
	col := m.ColView(0).(*mat.VecDense)
	apply(col, ReLU)

	assert.Equal(t, []float64{0, 5, 2, -6, 0, 7}, m.RawMatrix().Data)
	assert.Equal(t, []float64{0, 2, 0}, vecData(col))
}

func TestDerivative_DoesNotAlias(t *testing.T) {
	a := mat.NewVecDense(3, []float64{-1, 0, 2})
	d := derivative(a)

	assert.Equal(t, []float64{0, 0, 1}, d.RawVector().Data)
	assert.Equal(t, []float64{-1, 0, 2}, a.RawVector().Data)
	assert.False(t, math.IsNaN(d.AtVec(0)))
}
