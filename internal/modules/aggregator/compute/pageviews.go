// Package compute implements the per-kind grouping/measure rules of the
// aggregator's tick loop (spec §4.G). Each file groups one event kind by
// its natural key and reduces the group into an upsert-ready row.
package compute

import (
	"time"

	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	eventsentity "voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/bucket"
)

type pageViewKey struct {
	bucket    time.Time
	projectID string
	page      string
}

// PageViews groups PageView events by (bucket, project, page) and computes
// views_count / unique_users / unique_sessions for each group.
func PageViews(events []eventsentity.PageView, bucketMinutes int) []aggentity.PageViewAgg {
	groups := map[pageViewKey]*struct {
		count    int64
		users    map[string]struct{}
		sessions map[string]struct{}
	}{}

	for _, e := range events {
		k := pageViewKey{
			bucket:    bucket.FromMillis(e.Timestamp),
			projectID: e.ProjectID,
			page:      e.Page,
		}
		if bucketMinutes > 0 {
			k.bucket = bucket.Truncate(k.bucket, bucketMinutes)
		}
		g, ok := groups[k]
		if !ok {
			g = &struct {
				count    int64
				users    map[string]struct{}
				sessions map[string]struct{}
			}{users: map[string]struct{}{}, sessions: map[string]struct{}{}}
			groups[k] = g
		}
		g.count++
		if e.UserID != "" {
			g.users[e.UserID] = struct{}{}
		}
		if e.SessionID != "" {
			g.sessions[e.SessionID] = struct{}{}
		}
	}

	rows := make([]aggentity.PageViewAgg, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, aggentity.PageViewAgg{
			TimeBucket:     k.bucket,
			ProjectID:      k.projectID,
			Page:           k.page,
			ViewsCount:     g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	return rows
}
