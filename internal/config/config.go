// Package config loads run settings for the ricenet command.
//
// Files are JSON5, so comments and trailing commas are accepted:
//
//	{
//	  // bigger hidden layer for the full dataset
//	  hidden_dim: 128,
//	  epochs: 2000,
//	}
//
// Keys missing from the file keep their Default value.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/nn"
)

// File is the on-disk run configuration.
type File struct {
	InputDim     int     `json:"input_dim"`
	HiddenDim    int     `json:"hidden_dim"`
	LearningRate float64 `json:"learning_rate"`
	Epochs       int     `json:"epochs"`
	InitScale    float64 `json:"init_scale"`
	Seed         uint64  `json:"seed"`
	SplitRatio   float64 `json:"split_ratio"`
	ClassOrder   string  `json:"class_order"`
	Data         string  `json:"data"`
}

// Default returns the reference configuration.
func Default() *File {
	return &File{
		InputDim:     len(dataset.FeatureNames),
		HiddenDim:    64,
		LearningRate: 0.01,
		Epochs:       5000,
		InitScale:    0.1,
		Seed:         42,
		SplitRatio:   0.8,
		ClassOrder:   "insertion",
		Data:         "data/Rice_MSC_Dataset_sample.csv",
	}
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// Parse decodes data on top of Default.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := json5.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return f, nil
}

// Validate checks the settings that are not part of nn.Config.
func (f *File) Validate() error {
	var err error
	if !(f.SplitRatio > 0 && f.SplitRatio < 1) {
		err = multierr.Append(err, errors.Wrapf(dataset.ErrInvalidSplit, "split_ratio must be in (0, 1), got %v", f.SplitRatio))
	}
	if _, orderErr := dataset.ParseOrder(f.ClassOrder); orderErr != nil {
		err = multierr.Append(err, orderErr)
	}
	if f.Data == "" {
		err = multierr.Append(err, errors.New("data path is required"))
	}
	return err
}

// Order returns the parsed class order.
func (f *File) Order() (dataset.Order, error) {
	return dataset.ParseOrder(f.ClassOrder)
}

// NetworkConfig builds the core configuration for a problem with outputDim
// classes.
func (f *File) NetworkConfig(outputDim int) nn.Config {
	return nn.Config{
		InputDim:     f.InputDim,
		HiddenDim:    f.HiddenDim,
		OutputDim:    outputDim,
		LearningRate: f.LearningRate,
		Epochs:       f.Epochs,
		InitScale:    f.InitScale,
	}
}
