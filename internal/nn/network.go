package nn

import (
	"github.com/pkg/errors"
)

// Network is the two-layer ReLU classifier together with the configuration
// it was built from.
//
// Example:
//
//	net, err := nn.NewNetwork(nn.Config{
//	    InputDim: 4, HiddenDim: 64, OutputDim: 3,
//	    LearningRate: 0.01, Epochs: 5000, InitScale: 0.1,
//	}, nn.NewSource(42))
//	class, err := net.Predict(sample)
type Network struct {
	config Config
	params *Parameters
}

// NewNetwork validates cfg and initializes parameters from rng.
func NewNetwork(cfg Config, rng Source) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params, err := InitParameters(cfg.InputDim, cfg.HiddenDim, cfg.OutputDim, cfg.InitScale, rng)
	if err != nil {
		return nil, err
	}
	return &Network{config: cfg, params: params}, nil
}

// NewNetworkWithParameters wraps an existing parameter set.
//
// The parameter shapes must agree with cfg.
func NewNetworkWithParameters(cfg Config, params *Parameters) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	in, hidden, out := params.Dims()
	if in != cfg.InputDim || hidden != cfg.HiddenDim || out != cfg.OutputDim {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"parameters are [%d, %d, %d], config wants [%d, %d, %d]",
			in, hidden, out, cfg.InputDim, cfg.HiddenDim, cfg.OutputDim)
	}
	return &Network{config: cfg, params: params}, nil
}

// Config returns the configuration the network was built with.
func (n *Network) Config() Config {
	return n.config
}

// Parameters returns the live parameter set. Mutating it mutates the network.
func (n *Network) Parameters() *Parameters {
	return n.params
}

// Forward runs a forward pass over a single sample.
func (n *Network) Forward(input []float64) (*Activations, error) {
	return Forward(input, n.params)
}

// Backward computes deltas for a single sample using the configured learning rate.
func (n *Network) Backward(input []float64, act *Activations, target []float64) (*Gradients, error) {
	return Backward(input, act, target, n.params, n.config.LearningRate)
}

// Predict returns the class index with the highest output score.
func (n *Network) Predict(input []float64) (int, error) {
	return Predict(input, n.params)
}
