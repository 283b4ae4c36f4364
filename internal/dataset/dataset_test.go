package dataset_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/nn"
)

func sequential(n int) *dataset.Dataset {
	features := make([][]float64, n)
	labels := make([][]float64, n)
	for i := range features {
		features[i] = []float64{float64(i)}
		labels[i] = []float64{1}
	}
	return &dataset.Dataset{Features: features, Labels: labels}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		n         int
		ratio     float64
		wantTrain int
	}{
		{20, 0.8, 16},
		{10, 0.8, 8},
		{7, 0.8, 6}, // ceil(5.6)
		{3, 0.5, 2}, // ceil(1.5)
		{1, 0.8, 1},
		{0, 0.8, 0},
	}
	for _, tt := range tests {
		set := sequential(tt.n)
		train, test, err := set.Split(tt.ratio)
		require.NoError(t, err)
		assert.Equal(t, tt.wantTrain, train.Len(), "n=%d ratio=%v", tt.n, tt.ratio)
		assert.Equal(t, tt.n-tt.wantTrain, test.Len())

		// Order is preserved across both halves.
		for i := 0; i < train.Len(); i++ {
			assert.Equal(t, float64(i), train.Features[i][0])
		}
		for i := 0; i < test.Len(); i++ {
			assert.Equal(t, float64(tt.wantTrain+i), test.Features[i][0])
		}
	}
}

func TestSplit_InvalidRatio(t *testing.T) {
	for _, ratio := range []float64{0, 1, -0.2, 1.5} {
		_, _, err := sequential(5).Split(ratio)
		assert.True(t, errors.Is(err, dataset.ErrInvalidSplit), "ratio=%v", ratio)
	}
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := dataset.NewRegistry([]string{"Jasmine", "Arborio", "Jasmine", "Basmati", "Arborio"}, dataset.InsertionOrder)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"Jasmine", "Arborio", "Basmati"}, r.Names())
	i, ok := r.Index("Basmati")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "Arborio", r.Name(1))
	assert.Equal(t, "", r.Name(3))
}

func TestRegistry_SortedOrder(t *testing.T) {
	r := dataset.NewRegistry([]string{"Jasmine", "Arborio", "Basmati"}, dataset.SortedOrder)
	assert.Equal(t, []string{"Arborio", "Basmati", "Jasmine"}, r.Names())

	v, err := r.OneHot("Jasmine")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, v)
}

func TestRegistry_Encode(t *testing.T) {
	labels := []string{"b", "a", "b"}
	r := dataset.NewRegistry(labels, dataset.InsertionOrder)

	encoded, err := r.Encode(labels)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}, {1, 0}}, encoded)

	_, err = r.Encode([]string{"c"})
	assert.True(t, errors.Is(err, dataset.ErrUnknownClass))
}

func TestParseOrder(t *testing.T) {
	o, err := dataset.ParseOrder("sorted")
	require.NoError(t, err)
	assert.Equal(t, dataset.SortedOrder, o)

	o, err = dataset.ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, dataset.InsertionOrder, o)

	_, err = dataset.ParseOrder("random")
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	in := "solidity,aspect_ratio,roundness,compactness,class\n" +
		"0.98, 2.1,0.69,0.73,Arborio\n" +
		"0.97,3.9,0.45,0.51, Basmati\n"

	records, err := dataset.LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []float64{0.98, 2.1, 0.69, 0.73}, records[0].Features)
	assert.Equal(t, "Basmati", records[1].Class)
	assert.Equal(t, []string{"Arborio", "Basmati"}, dataset.ClassNames(records))
}

func TestLoadCSV_Errors(t *testing.T) {
	header := "solidity,aspect_ratio,roundness,compactness,class\n"
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"header only", header, "no data rows"},
		{"empty", "", "no data rows"},
		{"bad float", header + "0.9,abc,0.1,0.2,x\n", "row 2, column aspect_ratio"},
		{"short row", "a,b,c,d\n1,2,3,4\n", "row 2: expected 5 fields"},
		{"ragged", header + "1,2,3,4,x\n1,2,3\n", "failed to read CSV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.LoadCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadCSVFile(t *testing.T) {
	records, err := dataset.LoadCSVFile("testdata/rice_sample.csv")
	require.NoError(t, err)
	require.Len(t, records, 6)

	registry := dataset.NewRegistry(dataset.ClassNames(records), dataset.InsertionOrder)
	assert.Equal(t, []string{"Arborio", "Basmati", "Ipsala"}, registry.Names())

	set, err := dataset.FromRecords(records, registry)
	require.NoError(t, err)
	require.NoError(t, set.CheckDims(4, 3))
	assert.Equal(t, 2, set.Class(3))

	_, err = dataset.LoadCSVFile("testdata/missing.csv")
	assert.Error(t, err)
}

func TestCheckDims(t *testing.T) {
	set, err := dataset.New([][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 0}, {0, 1, 0}})
	require.NoError(t, err)

	train, _, err := set.Split(0.5)
	require.NoError(t, err)
	assert.NoError(t, train.CheckDims(2, 2))
	assert.True(t, errors.Is(set.CheckDims(2, 2), nn.ErrDimensionMismatch))
	assert.True(t, errors.Is(set.CheckDims(3, 2), nn.ErrDimensionMismatch))

	_, err = dataset.New([][]float64{{1}}, nil)
	assert.True(t, errors.Is(err, nn.ErrDimensionMismatch))
}

func TestSummarize(t *testing.T) {
	set, err := dataset.New(
		[][]float64{{1, 10}, {3, 30}, {2, 20}},
		[][]float64{{1}, {1}, {1}},
	)
	require.NoError(t, err)

	summary, err := dataset.Summarize(set, []string{"a"})
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, dataset.ColumnSummary{Name: "a", Min: 1, Mean: 2, Max: 3}, summary[0])
	assert.Equal(t, dataset.ColumnSummary{Name: "feature_1", Min: 10, Mean: 20, Max: 30}, summary[1])

	_, err = dataset.Summarize(&dataset.Dataset{}, nil)
	assert.True(t, errors.Is(err, dataset.ErrEmpty))
}

func TestTwoClassSeparable(t *testing.T) {
	set := dataset.TwoClassSeparable(20)
	require.Equal(t, 20, set.Len())
	require.NoError(t, set.CheckDims(2, 2))

	for i := 0; i < set.Len(); i++ {
		features, _ := set.At(i)
		assert.Equal(t, i%2, set.Class(i))
		// The class is the index of the larger feature.
		assert.Equal(t, set.Class(i), nn.ArgMax(features))
	}
}
