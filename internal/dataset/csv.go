package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FeatureNames lists the shape features in column order.
var FeatureNames = []string{"solidity", "aspect_ratio", "roundness", "compactness"}

// Record is one parsed row of the rice table.
type Record struct {
	Features []float64 // One value per FeatureNames entry
	Class    string    // Raw class label, e.g. "Basmati"
}

// LoadCSVFile opens path and parses it with LoadCSV.
func LoadCSVFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer f.Close()

	records, err := LoadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return records, nil
}

// LoadCSV parses the rice table.
//
// CSV format:
//
//	solidity,aspect_ratio,roundness,compactness,class
//	0.9874,2.1014,0.6917,0.7341,Arborio
//
// The first row is a header and is skipped. Every data row must have at
// least five fields, the first four parseable as floats. Surrounding
// whitespace is trimmed.
func LoadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(rows) < 2 {
		return nil, errors.Wrap(ErrEmpty, "CSV file has no data rows")
	}

	// Skip header row
	rows = rows[1:]

	width := len(FeatureNames)
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after header
		if len(row) < width+1 {
			return nil, errors.Errorf("row %d: expected %d fields, got %d", line, width+1, len(row))
		}
		features := make([]float64, width)
		for j := 0; j < width; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %s", line, FeatureNames[j])
			}
			features[j] = v
		}
		records = append(records, Record{
			Features: features,
			Class:    strings.TrimSpace(row[width]),
		})
	}
	return records, nil
}

// ClassNames returns the raw class label of every record, in order.
func ClassNames(records []Record) []string {
	return lo.Map(records, func(r Record, _ int) string {
		return r.Class
	})
}

// FromRecords builds the feature matrix and one-hot label matrix.
//
// The registry must already contain every class present in records.
func FromRecords(records []Record, registry *Registry) (*Dataset, error) {
	features := lo.Map(records, func(r Record, _ int) []float64 {
		return r.Features
	})
	labels, err := registry.Encode(ClassNames(records))
	if err != nil {
		return nil, err
	}
	return New(features, labels)
}
