package dataset

// TwoClassSeparable builds a deterministic, linearly separable 2-feature set
// of n samples.
//
// Samples alternate between class 0, which is high on the first feature, and
// class 1, which is high on the second. Any in-order split therefore keeps
// both classes on each side.
func TwoClassSeparable(n int) *Dataset {
	features := make([][]float64, n)
	labels := make([][]float64, n)
	for i := 0; i < n; i++ {
		k := float64(i / 2)
		hi, lo := 0.7+0.015*k, 0.2-0.01*k
		if i%2 == 0 {
			features[i] = []float64{hi, lo}
			labels[i] = []float64{1, 0}
		} else {
			features[i] = []float64{lo, hi}
			labels[i] = []float64{0, 1}
		}
	}
	return &Dataset{Features: features, Labels: labels}
}
