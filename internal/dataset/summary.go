package dataset

import (
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ColumnSummary describes the range of one feature column.
type ColumnSummary struct {
	Name string
	Min  float64
	Mean float64
	Max  float64
}

// Summarize computes min, mean and max for every feature column.
//
// names labels the columns; missing names fall back to "feature_<i>".
func Summarize(d *Dataset, names []string) ([]ColumnSummary, error) {
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	width := len(d.Features[0])
	if err := d.CheckDims(width, len(d.Labels[0])); err != nil {
		return nil, err
	}

	out := make([]ColumnSummary, width)
	for j := 0; j < width; j++ {
		col := lo.Map(d.Features, func(row []float64, _ int) float64 {
			return row[j]
		})
		lowest, err := stats.Min(col)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", j)
		}
		mean, err := stats.Mean(col)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", j)
		}
		highest, err := stats.Max(col)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", j)
		}

		name := "feature_" + strconv.Itoa(j)
		if j < len(names) && names[j] != "" {
			name = names[j]
		}
		out[j] = ColumnSummary{Name: name, Min: lowest, Mean: mean, Max: highest}
	}
	return out, nil
}
