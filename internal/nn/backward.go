package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Gradients holds the parameter deltas for one sample, already scaled by the
// learning rate. ApplyDelta subtracts them from the parameters.
type Gradients struct {
	DW1 *mat.Dense    // [input_dim, hidden_dim]
	DB1 *mat.VecDense // [hidden_dim]
	DW2 *mat.Dense    // [hidden_dim, output_dim]
	DB2 *mat.VecDense // [output_dim]
}

// Backward computes parameter deltas for one sample by backpropagation.
//
// With a = act.Output, h = act.Hidden and t = target:
//
//	outputDelta = (a - t) ⊙ relu'(a)
//	hiddenDelta = (W2 · outputDelta) ⊙ relu'(h)
//	dW2 = lr · h ⊗ outputDelta     db2 = lr · outputDelta
//	dW1 = lr · x ⊗ hiddenDelta     db1 = lr · hiddenDelta
//
// relu' is taken on the post-activation values, which is exact for ReLU.
//
// Returns ErrDimensionMismatch if input, target or act do not match p.
func Backward(input []float64, act *Activations, target []float64, p *Parameters, lr float64) (*Gradients, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	inputDim, hiddenDim, outputDim := p.Dims()
	if len(input) != inputDim {
		return nil, mismatch("input", inputDim, len(input))
	}
	if len(target) != outputDim {
		return nil, mismatch("target", outputDim, len(target))
	}
	if act == nil || act.Hidden == nil || act.Output == nil {
		return nil, mismatch("activations", hiddenDim, 0)
	}
	if act.Hidden.Len() != hiddenDim {
		return nil, mismatch("hidden activation", hiddenDim, act.Hidden.Len())
	}
	if act.Output.Len() != outputDim {
		return nil, mismatch("output activation", outputDim, act.Output.Len())
	}

	x := mat.NewVecDense(inputDim, input)
	t := mat.NewVecDense(outputDim, target)

	// Output layer.
	var outputDelta mat.VecDense
	outputDelta.SubVec(act.Output, t)
	outputDelta.MulElemVec(&outputDelta, derivative(act.Output))

	// Hidden layer: map the output delta back through W2.
	var hiddenDelta mat.VecDense
	hiddenDelta.MulVec(p.W2, &outputDelta)
	hiddenDelta.MulElemVec(&hiddenDelta, derivative(act.Hidden))

	g := &Gradients{
		DW1: mat.NewDense(inputDim, hiddenDim, nil),
		DB1: mat.NewVecDense(hiddenDim, nil),
		DW2: mat.NewDense(hiddenDim, outputDim, nil),
		DB2: mat.NewVecDense(outputDim, nil),
	}
	g.DW2.Outer(lr, act.Hidden, &outputDelta)
	g.DB2.ScaleVec(lr, &outputDelta)
	g.DW1.Outer(lr, x, &hiddenDelta)
	g.DB1.ScaleVec(lr, &hiddenDelta)

	return g, nil
}
