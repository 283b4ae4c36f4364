package nn

import "gonum.org/v1/gonum/mat"

// Activations is the result of a forward pass over one sample.
type Activations struct {
	Hidden *mat.VecDense // relu(x·W1 + b1), length hidden_dim
	Output *mat.VecDense // relu(hidden·W2 + b2), length output_dim
}

// Scores returns the output activations as a slice, one score per class.
func (a *Activations) Scores() []float64 {
	return vecData(a.Output)
}

// Forward propagates a single sample through the network.
//
// Both layers use ReLU, including the output layer. Output scores are
// therefore non-negative but not normalized, and the class decision is a
// plain magnitude comparison (see ArgMax).
//
// Returns ErrDimensionMismatch if len(input) differs from the input width of p.
// Forward does not modify p or input.
func Forward(input []float64, p *Parameters) (*Activations, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	inputDim, _, _ := p.Dims()
	if len(input) != inputDim {
		return nil, mismatch("input", inputDim, len(input))
	}

	x := mat.NewVecDense(len(input), input)

	hidden := linear(x, p.W1, p.B1)
	apply(hidden, ReLU)

	output := linear(hidden, p.W2, p.B2)
	apply(output, ReLU)

	return &Activations{Hidden: hidden, Output: output}, nil
}
