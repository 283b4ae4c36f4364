// Package dataset loads the rice-grain table and turns it into index-aligned
// feature and one-hot label matrices.
//
// Loading happens in three steps, all outside the numeric core:
//
//	records, err := dataset.LoadCSVFile("data/Rice_MSC_Dataset_sample.csv")
//	registry := dataset.NewRegistry(dataset.ClassNames(records), dataset.InsertionOrder)
//	set, err := dataset.FromRecords(records, registry)
//	train, test, err := set.Split(0.8)
package dataset

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ricenet/internal/nn"
)

// ErrEmpty is returned when an operation needs at least one sample.
var ErrEmpty = errors.New("dataset is empty")

// Dataset is an ordered sequence of (features, one-hot label) pairs.
//
// Features[i] and Labels[i] describe the same sample. A Dataset is not
// modified after it is built.
type Dataset struct {
	Features [][]float64
	Labels   [][]float64
}

// New builds a Dataset from index-aligned features and labels.
func New(features, labels [][]float64) (*Dataset, error) {
	if len(features) != len(labels) {
		return nil, errors.Wrapf(nn.ErrDimensionMismatch,
			"%d feature rows but %d label rows", len(features), len(labels))
	}
	return &Dataset{Features: features, Labels: labels}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Features)
}

// At returns the features and label of sample i.
func (d *Dataset) At(i int) (features, label []float64) {
	return d.Features[i], d.Labels[i]
}

// CheckDims verifies that every sample has inputDim features and every label
// has outputDim entries.
func (d *Dataset) CheckDims(inputDim, outputDim int) error {
	if len(d.Features) != len(d.Labels) {
		return errors.Wrapf(nn.ErrDimensionMismatch,
			"%d feature rows but %d label rows", len(d.Features), len(d.Labels))
	}
	for i := range d.Features {
		if len(d.Features[i]) != inputDim {
			return errors.Wrapf(nn.ErrDimensionMismatch,
				"sample %d: expected %d features, got %d", i, inputDim, len(d.Features[i]))
		}
		if len(d.Labels[i]) != outputDim {
			return errors.Wrapf(nn.ErrDimensionMismatch,
				"label %d: expected width %d, got %d", i, outputDim, len(d.Labels[i]))
		}
	}
	return nil
}

// Class returns the class index encoded by label i, using the same
// last-wins tie rule as prediction.
func (d *Dataset) Class(i int) int {
	return nn.ArgMax(d.Labels[i])
}
