package nn

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config holds everything needed to build and train a Network.
//
// All fields are required. Validate applies no defaults: a zero value is
// reported as an error rather than silently replaced.
type Config struct {
	InputDim     int     // Number of input features (4 for rice grains)
	HiddenDim    int     // Width of the hidden ReLU layer
	OutputDim    int     // Number of classes
	LearningRate float64 // Step size folded into every delta
	Epochs       int     // Number of full passes over the training set
	InitScale    float64 // Weights are drawn uniformly from [0, InitScale)
}

// Validate reports every violated constraint at once.
//
// Each violation wraps ErrInvalidConfiguration, so errors.Is works on the
// combined result.
func (c Config) Validate() error {
	var err error
	for _, dim := range []struct {
		name  string
		value int
	}{
		{"input_dim", c.InputDim},
		{"hidden_dim", c.HiddenDim},
		{"output_dim", c.OutputDim},
		{"epochs", c.Epochs},
	} {
		if dim.value <= 0 {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "%s must be positive, got %d", dim.name, dim.value))
		}
	}
	if !(c.LearningRate > 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "learning_rate must be positive, got %v", c.LearningRate))
	}
	if !(c.InitScale > 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "init_scale must be positive, got %v", c.InitScale))
	}
	return err
}
