package compute

import (
	"time"

	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	eventsentity "voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/bucket"
)

type customEventKey struct {
	bucket    time.Time
	projectID string
	eventName string
	page      string
}

// CustomEvents groups CustomEvent events by (bucket, project, event_name,
// page); counts and uniques follow the PageViews rule.
func CustomEvents(events []eventsentity.CustomEvent, bucketMinutes int) []aggentity.CustomEventAgg {
	groups := map[customEventKey]*struct {
		count    int64
		users    map[string]struct{}
		sessions map[string]struct{}
	}{}

	for _, e := range events {
		k := customEventKey{
			bucket:    bucket.Truncate(bucket.FromMillis(e.Timestamp), bucketMinutes),
			projectID: e.ProjectID,
			eventName: e.Name,
			page:      e.Page,
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

	rows := make([]aggentity.CustomEventAgg, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, aggentity.CustomEventAgg{
			TimeBucket:     k.bucket,
			ProjectID:      k.projectID,
			EventName:      k.eventName,
			Page:           k.page,
			EventsCount:    g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	return rows
}
