// Package percentile computes the nearest-rank percentile used by the
// Performance aggregate's p95 measures.
package percentile

import "sort"

// P95 returns the value at index ⌊0.95·(n−1)⌋ of the sorted input, or 0 for
// an empty slice. The input is not mutated.
func P95(values []float64) float64 {
	return Nearest(values, 0.95)
}

// Nearest returns the value at index ⌊q·(n−1)⌋ of the sorted input, or 0
// for an empty slice. q is expected in [0, 1].
func Nearest(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(q * float64(n-1))
	return sorted[idx]
}

// Average returns the arithmetic mean, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
