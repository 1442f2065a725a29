package compute

import (
	"time"

	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	eventsentity "voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/bucket"
)

type clickKey struct {
	bucket    time.Time
	projectID string
	page      string
	elementID string
}

// Clicks groups Click events by (bucket, project, page, element_id).
func Clicks(events []eventsentity.Click, bucketMinutes int) []aggentity.ClickAgg {
	groups := map[clickKey]*struct {
		count    int64
		users    map[string]struct{}
		sessions map[string]struct{}
	}{}

	for _, e := range events {
		k := clickKey{
			bucket:    bucket.Truncate(bucket.FromMillis(e.Timestamp), bucketMinutes),
			projectID: e.ProjectID,
			page:      e.Page,
			elementID: e.ElementID,
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

	rows := make([]aggentity.ClickAgg, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, aggentity.ClickAgg{
			TimeBucket:     k.bucket,
			ProjectID:      k.projectID,
			Page:           k.page,
			ElementID:      k.elementID,
			ClicksCount:    g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	return rows
}
