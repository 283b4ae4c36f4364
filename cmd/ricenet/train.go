package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/born-ml/ricenet/internal/config"
	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/eval"
	"github.com/born-ml/ricenet/internal/logging"
	"github.com/born-ml/ricenet/internal/nn"
	"github.com/born-ml/ricenet/internal/parallel"
	"github.com/born-ml/ricenet/internal/progress"
	"github.com/born-ml/ricenet/internal/train"
)

// run holds everything one training run needs.
type run struct {
	cfg      *config.File
	workers  int
	logEvery int
	logger   *zap.SugaredLogger
	spinner  progress.SpinnerFactory
	out      io.Writer
}

func trainAction(c *cli.Context) error {
	logger, err := logging.New(c.Bool(flagDebug))
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	r := run{
		cfg:      cfg,
		workers:  c.Int(flagWorkers),
		logEvery: c.Int(flagLogEvery),
		logger:   logger,
		out:      c.App.Writer,
	}
	if c.Bool(flagNoSpinner) {
		r.spinner = progress.NopSpinnerFactory
	}
	_, err = r.execute(c.Context)
	return err
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig(c *cli.Context) (*config.File, error) {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet(flagData) {
		cfg.Data = c.String(flagData)
	}
	if c.IsSet(flagHidden) {
		cfg.HiddenDim = c.Int(flagHidden)
	}
	if c.IsSet(flagLR) {
		cfg.LearningRate = c.Float64(flagLR)
	}
	if c.IsSet(flagEpochs) {
		cfg.Epochs = c.Int(flagEpochs)
	}
	if c.IsSet(flagInitScale) {
		cfg.InitScale = c.Float64(flagInitScale)
	}
	if c.IsSet(flagSeed) {
		cfg.Seed = c.Uint64(flagSeed)
	}
	if c.IsSet(flagSplit) {
		cfg.SplitRatio = c.Float64(flagSplit)
	}
	if c.IsSet(flagClassOrder) {
		cfg.ClassOrder = c.String(flagClassOrder)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (r run) parallelConfig() parallel.Config {
	switch {
	case r.workers == 0:
		return parallel.DefaultConfig()
	case r.workers == 1:
		return parallel.Sequential()
	default:
		cfg := parallel.DefaultConfig()
		cfg.Enabled = true
		cfg.NumWorkers = r.workers
		return cfg
	}
}

// execute loads the data, trains, evaluates on the held-out part and prints
// the report.
func (r run) execute(ctx context.Context) (*eval.Report, error) {
	records, err := dataset.LoadCSVFile(r.cfg.Data)
	if err != nil {
		return nil, err
	}
	order, err := r.cfg.Order()
	if err != nil {
		return nil, err
	}
	registry := dataset.NewRegistry(dataset.ClassNames(records), order)
	set, err := dataset.FromRecords(records, registry)
	if err != nil {
		return nil, err
	}

	r.logger.Infow("Class map", "classes", registry.Names())
	r.logger.Infow("Loaded dataset", "path", r.cfg.Data, "samples", set.Len(), "features", len(dataset.FeatureNames))
	summary, err := dataset.Summarize(set, dataset.FeatureNames)
	if err != nil {
		return nil, err
	}
	for _, col := range summary {
		r.logger.Infow("Feature", "name", col.Name, "min", col.Min, "mean", col.Mean, "max", col.Max)
	}

	trainSet, testSet, err := set.Split(r.cfg.SplitRatio)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("Split dataset", "train", trainSet.Len(), "test", testSet.Len())

	netCfg := r.cfg.NetworkConfig(registry.Len())
	net, err := nn.NewNetwork(netCfg, nn.NewSource(r.cfg.Seed))
	if err != nil {
		return nil, err
	}
	trainer, err := train.New(netCfg,
		train.WithLogger(r.logger),
		train.WithObserver(progress.NewEpochLogger(r.logger, r.logEvery)),
	)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("Training",
		"hidden", netCfg.HiddenDim,
		"learning_rate", netCfg.LearningRate,
		"epochs", netCfg.Epochs,
		"seed", r.cfg.Seed,
	)

	indicator := progress.NewIndicator(progress.WithSpinnerFactory(r.spinner))
	if err := indicator.Start(ctx); err != nil {
		return nil, err
	}
	trainErr := trainer.Train(net, trainSet)
	if err := indicator.Stop(); err != nil {
		return nil, err
	}
	if trainErr != nil {
		return nil, trainErr
	}

	report, err := eval.Evaluate(net, testSet, r.parallelConfig())
	if err != nil {
		return nil, err
	}
	if err := renderReport(r.out, report, registry); err != nil {
		return nil, err
	}
	r.logger.Infow("Evaluation finished",
		"correct", report.Correct(),
		"total", len(report.Predictions),
		"accuracy", report.Accuracy,
		"mean_loss", report.MeanLoss,
	)
	return report, nil
}
