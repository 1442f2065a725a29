package percentile_test

import (
	"testing"

	"voyago/core-api/internal/pkg/percentile"

	"github.com/stretchr/testify/assert"
)

func TestP95_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, float64(0), percentile.P95(nil))
	assert.Equal(t, float64(0), percentile.P95([]float64{}))
}

func TestP95_NearestRankOnSortedInput(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	// idx = floor(0.95 * 9) = 8 -> sorted[8] = 90
	assert.Equal(t, float64(90), percentile.P95(values))
}

func TestP95_DoesNotMutateInput(t *testing.T) {
	values := []float64{50, 10, 30}
	_ = percentile.P95(values)
	assert.Equal(t, []float64{50, 10, 30}, values)
}

func TestNearest_SingleValue(t *testing.T) {
	assert.Equal(t, float64(42), percentile.Nearest([]float64{42}, 0.95))
}

func TestAverage_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, float64(0), percentile.Average(nil))
}

func TestAverage_ComputesMean(t *testing.T) {
	assert.Equal(t, float64(20), percentile.Average([]float64{10, 20, 30}))
}
