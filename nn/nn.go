// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ricenet/internal/nn"
)

// Errors

// ErrInvalidConfiguration is returned for non-positive dimensions, epochs,
// learning rate or init scale.
var ErrInvalidConfiguration = nn.ErrInvalidConfiguration

// ErrDimensionMismatch is returned when a vector width does not match the
// network.
var ErrDimensionMismatch = nn.ErrDimensionMismatch

// Configuration

// Config holds the network shape and training hyperparameters.
type Config = nn.Config

// Source supplies uniform random numbers in [0, 1).
type Source = nn.Source

// NewSource returns a PCG-backed Source seeded with seed.
//
// Example:
//
//	net, err := nn.NewNetwork(cfg, nn.NewSource(42))
func NewSource(seed uint64) Source {
	return nn.NewSource(seed)
}

// Parameters

// Parameters holds W1, B1, W2 and B2.
type Parameters = nn.Parameters

// Gradients holds the learning-rate-scaled deltas for every parameter.
type Gradients = nn.Gradients

// Activations holds the hidden and output values of one forward pass.
type Activations = nn.Activations

// InitParameters draws weights from U[0, scale) and zeroes the biases.
func InitParameters(inputDim, hiddenDim, outputDim int, scale float64, rng Source) (*Parameters, error) {
	return nn.InitParameters(inputDim, hiddenDim, outputDim, scale, rng)
}

// Network

// Network pairs a Config with its Parameters.
type Network = nn.Network

// NewNetwork validates cfg and initializes fresh parameters from rng.
func NewNetwork(cfg Config, rng Source) (*Network, error) {
	return nn.NewNetwork(cfg, rng)
}

// NewNetworkWithParameters wraps existing parameters.
func NewNetworkWithParameters(cfg Config, params *Parameters) (*Network, error) {
	return nn.NewNetworkWithParameters(cfg, params)
}

// Operations

// Forward runs input through the network.
func Forward(input []float64, p *Parameters) (*Activations, error) {
	return nn.Forward(input, p)
}

// Backward computes the deltas for one sample.
func Backward(input []float64, act *Activations, target []float64, p *Parameters, lr float64) (*Gradients, error) {
	return nn.Backward(input, act, target, p, lr)
}

// Predict returns the class with the highest output score.
func Predict(input []float64, p *Parameters) (int, error) {
	return nn.Predict(input, p)
}

// ArgMax returns the index of the largest value, preferring the last one on
// ties.
//
// Example:
//
//	nn.ArgMax([]float64{0.5, 0.5}) // 1
func ArgMax(v []float64) int {
	return nn.ArgMax(v)
}

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	return nn.ReLU(x)
}
