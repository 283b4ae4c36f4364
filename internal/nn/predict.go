package nn

import "math"

// ArgMax returns the index of the largest element of v.
//
// When several elements share the maximum, the last of them wins: [0.5, 0.5]
// yields 1. NaN elements are skipped; an empty or all-NaN vector yields 0.
func ArgMax(v []float64) int {
	best := 0
	for i, x := range v {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(v[best]) || x >= v[best] {
			best = i
		}
	}
	return best
}

// Predict runs a forward pass and returns the winning class index, which is
// always in [0, output_dim).
func Predict(input []float64, p *Parameters) (int, error) {
	act, err := Forward(input, p)
	if err != nil {
		return 0, err
	}
	return ArgMax(act.Scores()), nil
}
