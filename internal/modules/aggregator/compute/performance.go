package compute

import (
	"time"

	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	eventsentity "voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/bucket"
	"voyago/core-api/internal/pkg/percentile"
)

type performanceKey struct {
	bucket    time.Time
	projectID string
	page      string
}

// Performance groups Performance events by (bucket, project, page). For
// each of the four timing metrics, zero/missing values are excluded from
// the sample before computing avg and p95 (spec §4.G: "collect values > 0
// (zero/missing treated as absent)").
func Performance(events []eventsentity.Performance, bucketMinutes int) []aggentity.PerformanceAgg {
	type sample struct {
		count int64
		ttfb  []float64
		fcp   []float64
		lcp   []float64
		total []float64
	}
	groups := map[performanceKey]*sample{}

	collect := func(dst *[]float64, v *float64) {
		if v != nil && *v > 0 {
			*dst = append(*dst, *v)
		}
	}

	for _, e := range events {
		k := performanceKey{
			bucket:    bucket.Truncate(bucket.FromMillis(e.Timestamp), bucketMinutes),
			projectID: e.ProjectID,
			page:      e.Page,
		}
		g, ok := groups[k]
		if !ok {
			g = &sample{}
			groups[k] = g
		}
		g.count++
		collect(&g.ttfb, e.TTFBMs)
		collect(&g.fcp, e.FCPMs)
		collect(&g.lcp, e.LCPMs)
		collect(&g.total, e.TotalPageLoadMs)
	}

	rows := make([]aggentity.PerformanceAgg, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, aggentity.PerformanceAgg{
			TimeBucket:     k.bucket,
			ProjectID:      k.projectID,
			Page:           k.page,
			SamplesCount:   g.count,
			AvgTTFBMs:      percentile.Average(g.ttfb),
			P95TTFBMs:      percentile.P95(g.ttfb),
			AvgFCPMs:       percentile.Average(g.fcp),
			P95FCPMs:       percentile.P95(g.fcp),
			AvgLCPMs:       percentile.Average(g.lcp),
			P95LCPMs:       percentile.P95(g.lcp),
			AvgTotalLoadMs: percentile.Average(g.total),
			P95TotalLoadMs: percentile.P95(g.total),
		})
	}
	return rows
}
