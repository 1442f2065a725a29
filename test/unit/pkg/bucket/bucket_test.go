package bucket_test

import (
	"testing"
	"time"

	"voyago/core-api/internal/pkg/bucket"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_FloorsToBucketBoundary(t *testing.T) {
	// 12:07:30 truncated to a 5-minute bucket floors to 12:05:00
	in := time.Date(2026, 1, 1, 12, 7, 30, 0, time.UTC)
	want := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, want, bucket.Truncate(in, 5))
}

func TestTruncate_ExactBoundaryStaysInSameBucket(t *testing.T) {
	in := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, in, bucket.Truncate(in, 5))
}

func TestTruncate_DefaultsToFiveMinutesWhenNonPositive(t *testing.T) {
	in := time.Date(2026, 1, 1, 12, 7, 30, 0, time.UTC)
	want := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, want, bucket.Truncate(in, 0))
	assert.Equal(t, want, bucket.Truncate(in, -1))
}

func TestTruncate_NonUTCInputIsNormalized(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2026, 1, 1, 14, 7, 30, 0, loc) // 12:07:30 UTC
	want := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, want, bucket.Truncate(in, 5))
}

func TestFromMillis_ConvertsToUTC(t *testing.T) {
	ms := int64(1735689600000) // 2025-01-01T00:00:00Z
	got := bucket.FromMillis(ms)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got)
}
