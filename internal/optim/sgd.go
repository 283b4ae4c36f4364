package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ricenet/internal/nn"
)

// SGD implements per-sample Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The learning rate is applied inside nn.Backward, so the deltas handed to
// ApplyDelta are already scaled. There is no momentum and no batching.
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate, must be positive
}

// NewSGD creates a new SGD optimizer.
//
// Returns nn.ErrInvalidConfiguration if the learning rate is not positive.
func NewSGD(config SGDConfig) (*SGD, error) {
	if !(config.LR > 0) {
		return nil, errors.Wrapf(nn.ErrInvalidConfiguration, "learning rate must be positive, got %v", config.LR)
	}
	return &SGD{lr: config.LR}, nil
}

// Step performs one forward/backward/update cycle on params.
//
// If input or target has the wrong width, nn.ErrDimensionMismatch is returned
// and params is left untouched.
func (s *SGD) Step(params *nn.Parameters, input, target []float64) (float64, error) {
	act, err := nn.Forward(input, params)
	if err != nil {
		return 0, err
	}
	loss, err := nn.SquaredError(act.Output, target)
	if err != nil {
		return 0, err
	}
	grads, err := nn.Backward(input, act, target, params, s.lr)
	if err != nil {
		return 0, err
	}
	if err := params.ApplyDelta(grads); err != nil {
		return 0, err
	}
	return loss, nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}
