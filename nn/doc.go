// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the two-layer ReLU network used by ricenet.
//
// # Overview
//
// A Network maps an input vector through one hidden ReLU layer and a ReLU
// output layer:
//
//	hidden = relu(input·W1 + b1)
//	output = relu(hidden·W2 + b2)
//
// The output scores are not normalized. The predicted class is the index of
// the largest score, with ties going to the last maximal index.
//
// # Basic Usage
//
//	import "github.com/born-ml/ricenet/nn"
//
//	func main() {
//	    cfg := nn.Config{
//	        InputDim:     4,
//	        HiddenDim:    64,
//	        OutputDim:    3,
//	        LearningRate: 0.01,
//	        Epochs:       5000,
//	        InitScale:    0.1,
//	    }
//	    net, err := nn.NewNetwork(cfg, nn.NewSource(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    class, err := net.Predict([]float64{0.98, 2.1, 0.69, 0.73})
//	}
//
// # Training
//
// One per-sample gradient step is Forward, Backward and ApplyDelta:
//
//	act, _ := nn.Forward(input, params)
//	grads, _ := nn.Backward(input, act, target, params, lr)
//	_ = params.ApplyDelta(grads)
//
// The optim package wraps this step, and the internal trainer runs it over
// every sample of every epoch in order.
//
// # Determinism
//
// Weights are drawn from an injected Source, W1 first and then W2, both in
// row-major order. The same seed, config and data order always give
// bit-identical parameters.
package nn
