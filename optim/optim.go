// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/ricenet/internal/optim"
)

// Optimizer applies one update for a single sample.
type Optimizer = optim.Optimizer

// SGD is plain stochastic gradient descent without momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.05})
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}
