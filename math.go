package naca16

import (
	"math"
	"sort"
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// locate returns the cell i with samples[i] <= x <= samples[i+1] and the
// fractional position of x inside it. x must lie within the samples.
func locate(samples []float64, x float64) (int, float64) {
	i := sort.SearchFloat64s(samples, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(samples)-2 {
		i = len(samples) - 2
	}
	return i, (x - samples[i]) / (samples[i+1] - samples[i])
}
