// Package train drives per-sample gradient descent over a dataset for a
// fixed number of epochs.
package train

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/nn"
	"github.com/born-ml/ricenet/internal/optim"
)

// Trainer runs the training loop.
//
// Samples are visited in the order the dataset holds them, every epoch,
// without shuffling. Each sample triggers exactly one parameter update. There
// is no early stopping; a run always lasts Epochs epochs.
type Trainer struct {
	config    nn.Config
	epochs    int
	optimizer optim.Optimizer
	observer  Observer
	logger    *zap.SugaredLogger
}

// Option customizes a Trainer.
type Option func(*Trainer)

// WithObserver routes epoch events to o.
func WithObserver(o Observer) Option {
	return func(t *Trainer) {
		if o != nil {
			t.observer = o
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *Trainer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithOptimizer replaces the default SGD optimizer.
func WithOptimizer(o optim.Optimizer) Option {
	return func(t *Trainer) {
		if o != nil {
			t.optimizer = o
		}
	}
}

// New creates a Trainer for cfg.
//
// Unless WithOptimizer is given, it uses SGD with cfg.LearningRate.
func New(cfg nn.Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})
	if err != nil {
		return nil, err
	}
	t := &Trainer{
		config:    cfg,
		epochs:    cfg.Epochs,
		optimizer: sgd,
		observer:  nopObserver{},
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Train updates net in place over set.
//
// Every sample and label width is checked before the first update. On
// mismatch ErrDimensionMismatch is returned and the network is untouched.
// A network built from a different Config than the trainer's is rejected
// with ErrInvalidConfiguration.
func (t *Trainer) Train(net *nn.Network, set *dataset.Dataset) error {
	params := net.Parameters()
	cfg := net.Config()
	if cfg != t.config {
		return errors.Wrapf(nn.ErrInvalidConfiguration,
			"network config %+v does not match trainer config %+v", cfg, t.config)
	}
	if err := set.CheckDims(cfg.InputDim, cfg.OutputDim); err != nil {
		return err
	}
	if set.Len() == 0 {
		return errors.Wrap(dataset.ErrEmpty, "training set")
	}

	losses := make([]float64, set.Len())
	for epoch := 1; epoch <= t.epochs; epoch++ {
		for i := 0; i < set.Len(); i++ {
			features, label := set.At(i)
			loss, err := t.optimizer.Step(params, features, label)
			if err != nil {
				return errors.Wrapf(err, "epoch %d, sample %d", epoch, i)
			}
			losses[i] = loss
		}

		mean, err := stats.Mean(losses)
		if err != nil {
			return errors.Wrapf(err, "epoch %d loss", epoch)
		}
		t.logger.Debugw("epoch completed",
			"epoch", epoch,
			"epochs", t.epochs,
			"learning_rate", t.optimizer.GetLR(),
			"mean_loss", mean,
		)
		t.observer.EpochCompleted(EpochEvent{Epoch: epoch, Epochs: t.epochs, MeanLoss: mean})
	}
	return nil
}
