// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the per-sample gradient descent step.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ricenet/nn"
//	    "github.com/born-ml/ricenet/optim"
//	)
//
//	func main() {
//	    sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Updates params in place and returns the squared error
//	    // measured before the update.
//	    loss, err := sgd.Step(params, input, target)
//	}
package optim
