// Package eval scores a trained network against a held-out dataset.
package eval

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/nn"
	"github.com/born-ml/ricenet/internal/parallel"
)

// Report holds per-sample predictions and aggregate scores.
type Report struct {
	Predictions []int   // Predicted class per sample
	Actuals     []int   // Arg-max of the one-hot label per sample
	Accuracy    float64 // Fraction of samples predicted correctly, in [0, 1]
	MeanLoss    float64 // Mean squared error of the output scores
	Confusion   [][]int // Confusion[actual][predicted]
}

// Correct returns the number of correctly predicted samples.
func (r *Report) Correct() int {
	n := 0
	for i := range r.Predictions {
		if r.Predictions[i] == r.Actuals[i] {
			n++
		}
	}
	return n
}

// Evaluate predicts every sample of set with net.
//
// Predictions only read the network, so they may run concurrently according
// to cfg. Training must have finished before Evaluate is called.
func Evaluate(net *nn.Network, set *dataset.Dataset, cfg parallel.Config) (*Report, error) {
	netCfg := net.Config()
	if err := set.CheckDims(netCfg.InputDim, netCfg.OutputDim); err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, errors.Wrap(dataset.ErrEmpty, "evaluation set")
	}

	n := set.Len()
	r := &Report{
		Predictions: make([]int, n),
		Actuals:     make([]int, n),
	}
	losses := make([]float64, n)
	err := parallel.For(n, func(i int) error {
		features, label := set.At(i)
		act, err := net.Forward(features)
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		loss, err := nn.SquaredError(act.Output, label)
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		r.Predictions[i] = nn.ArgMax(act.Scores())
		r.Actuals[i] = set.Class(i)
		losses[i] = loss
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	hits := make([]float64, n)
	r.Confusion = make([][]int, netCfg.OutputDim)
	for k := range r.Confusion {
		r.Confusion[k] = make([]int, netCfg.OutputDim)
	}
	for i := range hits {
		if r.Predictions[i] == r.Actuals[i] {
			hits[i] = 1
		}
		r.Confusion[r.Actuals[i]][r.Predictions[i]]++
	}

	if r.Accuracy, err = stats.Mean(hits); err != nil {
		return nil, errors.Wrap(err, "accuracy")
	}
	if r.MeanLoss, err = stats.Mean(losses); err != nil {
		return nil, errors.Wrap(err, "mean loss")
	}
	return r, nil
}
