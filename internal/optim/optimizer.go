// Package optim implements the parameter update rule used to train the
// rice-grain classifier.
//
// Only plain per-sample stochastic gradient descent is provided: every call
// to Step runs a forward pass, backpropagates the error for that one sample
// and applies the resulting deltas before returning.
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	for _, s := range samples {
//	    loss, err := sgd.Step(params, s.Features, s.Label)
//	}
package optim

import (
	"github.com/born-ml/ricenet/internal/nn"
)

// Optimizer updates parameters from one labelled sample at a time.
type Optimizer interface {
	// Step runs forward, backward and update for a single sample.
	//
	// It returns the squared error measured before the update. The update is
	// visible to the next call.
	Step(params *nn.Parameters, input, target []float64) (float64, error)

	// GetLR returns the learning rate folded into every delta.
	GetLR() float64
}
