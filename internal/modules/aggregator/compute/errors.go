package compute

import (
	"time"

	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	eventsentity "voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/bucket"
)

type errorKey struct {
	bucket    time.Time
	projectID string
	page      string
	errorType string
}

// Errors groups ErrorEvent events by (bucket, project, page, error_type).
// Events lacking error_type group under the empty-string value (spec §4.G
// "grouping attribute absent" edge case — entity.Validate already rejects
// a truly-empty error_type at ingestion time, so this only matters for
// events that slipped through before that rule existed).
func Errors(events []eventsentity.ErrorEvent, bucketMinutes int) []aggentity.ErrorAgg {
	groups := map[errorKey]*struct {
		count    int64
		warning  int64
		critical int64
		users    map[string]struct{}
	}{}

	for _, e := range events {
		k := errorKey{
			bucket:    bucket.Truncate(bucket.FromMillis(e.Timestamp), bucketMinutes),
			projectID: e.ProjectID,
			page:      e.Page,
			errorType: e.ErrorType,
		}
		g, ok := groups[k]
		if !ok {
			g = &struct {
				count    int64
				warning  int64
				critical int64
				users    map[string]struct{}
			}{users: map[string]struct{}{}}
			groups[k] = g
		}
		g.count++
		switch e.Severity {
		case eventsentity.SeverityWarning:
			g.warning++
		case eventsentity.SeverityCritical:
			g.critical++
		}
		if e.UserID != "" {
			g.users[e.UserID] = struct{}{}
		}
	}

	rows := make([]aggentity.ErrorAgg, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, aggentity.ErrorAgg{
			TimeBucket:    k.bucket,
			ProjectID:     k.projectID,
			Page:          k.page,
			ErrorType:     k.errorType,
			ErrorsCount:   g.count,
			WarningCount:  g.warning,
			CriticalCount: g.critical,
			UniqueUsers:   int64(len(g.users)),
		})
	}
	return rows
}
