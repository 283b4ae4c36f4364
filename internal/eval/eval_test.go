package eval_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/eval"
	"github.com/born-ml/ricenet/internal/nn"
	"github.com/born-ml/ricenet/internal/parallel"
)

// identityNetwork copies a 2-feature input straight to the two class scores.
func identityNetwork(t *testing.T) *nn.Network {
	t.Helper()
	params := &nn.Parameters{
		W1: mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		B1: mat.NewVecDense(2, nil),
		W2: mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		B2: mat.NewVecDense(2, nil),
	}
	net, err := nn.NewNetworkWithParameters(nn.Config{
		InputDim: 2, HiddenDim: 2, OutputDim: 2,
		LearningRate: 0.1, Epochs: 1, InitScale: 0.1,
	}, params)
	require.NoError(t, err)
	return net
}

func TestEvaluate(t *testing.T) {
	set, err := dataset.New(
		[][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.7, 0.3}, {0.5, 0.5}},
		[][]float64{{1, 0}, {0, 1}, {0, 1}, {1, 0}},
	)
	require.NoError(t, err)

	report, err := eval.Evaluate(identityNetwork(t), set, parallel.Sequential())
	require.NoError(t, err)

	// The tie in the last sample resolves to class 1.
	assert.Equal(t, []int{0, 1, 0, 1}, report.Predictions)
	assert.Equal(t, []int{0, 1, 1, 0}, report.Actuals)
	assert.Equal(t, 2, report.Correct())
	assert.Equal(t, 0.5, report.Accuracy)
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, report.Confusion)
	assert.Greater(t, report.MeanLoss, 0.0)
}

func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	net, err := nn.NewNetwork(nn.Config{
		InputDim: 2, HiddenDim: 8, OutputDim: 2,
		LearningRate: 0.05, Epochs: 1, InitScale: 0.1,
	}, nn.NewSource(3))
	require.NoError(t, err)
	set := dataset.TwoClassSeparable(200)

	seq, err := eval.Evaluate(net, set, parallel.Sequential())
	require.NoError(t, err)
	par, err := eval.Evaluate(net, set, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8})
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestEvaluate_Errors(t *testing.T) {
	net := identityNetwork(t)

	_, err := eval.Evaluate(net, &dataset.Dataset{}, parallel.Sequential())
	assert.True(t, errors.Is(err, dataset.ErrEmpty))

	bad := &dataset.Dataset{
		Features: [][]float64{{1, 2, 3}},
		Labels:   [][]float64{{1, 0}},
	}
	_, err = eval.Evaluate(net, bad, parallel.DefaultConfig())
	assert.True(t, errors.Is(err, nn.ErrDimensionMismatch))
}
