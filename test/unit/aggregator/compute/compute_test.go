package compute_test

import (
	"testing"
	"time"

	"voyago/core-api/internal/modules/aggregator/compute"
	eventsentity "voyago/core-api/internal/modules/events/entity"

	"github.com/stretchr/testify/assert"
)

func tsMillis(t time.Time) int64 { return t.UnixMilli() }

func TestPageViews_GroupsByBucketProjectPageAndDedupesUniques(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 1, 0, 0, time.UTC)
	events := []eventsentity.PageView{
		{ProjectID: "p1", Page: "/home", Timestamp: tsMillis(base), UserID: "u1", SessionID: "s1"},
		{ProjectID: "p1", Page: "/home", Timestamp: tsMillis(base.Add(2 * time.Minute)), UserID: "u1", SessionID: "s1"},
		{ProjectID: "p1", Page: "/home", Timestamp: tsMillis(base.Add(3 * time.Minute)), UserID: "u2", SessionID: "s2"},
		{ProjectID: "p1", Page: "/other", Timestamp: tsMillis(base)},
	}

	rows := compute.PageViews(events, 5)

	var home *struct {
		count    int64
		users    int64
		sessions int64
	}
	for _, r := range rows {
		if r.Page == "/home" {
			home = &struct {
				count    int64
				users    int64
				sessions int64
			}{r.ViewsCount, r.UniqueUsers, r.UniqueSessions}
		}
	}
	if assert.NotNil(t, home) {
		assert.Equal(t, int64(3), home.count)
		assert.Equal(t, int64(2), home.users)
		assert.Equal(t, int64(2), home.sessions)
	}
	assert.Len(t, rows, 2) // /home and /other fall in the same 5-min bucket but differ by page
}

func TestPageViews_EmptyInputReturnsEmptySlice(t *testing.T) {
	rows := compute.PageViews(nil, 5)
	assert.Empty(t, rows)
}

func TestPageViews_MissingUserOrSessionIDNotCountedAsUnique(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.PageView{
		{ProjectID: "p1", Page: "/home", Timestamp: tsMillis(base)},
		{ProjectID: "p1", Page: "/home", Timestamp: tsMillis(base)},
	}
	rows := compute.PageViews(events, 5)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, int64(2), rows[0].ViewsCount)
		assert.Equal(t, int64(0), rows[0].UniqueUsers)
		assert.Equal(t, int64(0), rows[0].UniqueSessions)
	}
}

func TestClicks_GroupsByElementIDInAdditionToPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.Click{
		{ProjectID: "p1", Page: "/home", ElementID: "btn-1", Timestamp: tsMillis(base), UserID: "u1"},
		{ProjectID: "p1", Page: "/home", ElementID: "btn-2", Timestamp: tsMillis(base), UserID: "u1"},
	}
	rows := compute.Clicks(events, 5)
	assert.Len(t, rows, 2)
}

func TestErrors_AccumulatesSeverityBuckets(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.ErrorEvent{
		{ProjectID: "p1", Page: "/x", ErrorType: "TypeError", Timestamp: tsMillis(base), Severity: eventsentity.SeverityWarning, UserID: "u1"},
		{ProjectID: "p1", Page: "/x", ErrorType: "TypeError", Timestamp: tsMillis(base), Severity: eventsentity.SeverityCritical, UserID: "u2"},
		{ProjectID: "p1", Page: "/x", ErrorType: "TypeError", Timestamp: tsMillis(base), Severity: eventsentity.SeverityError, UserID: "u1"},
	}
	rows := compute.Errors(events, 5)
	if assert.Len(t, rows, 1) {
		r := rows[0]
		assert.Equal(t, int64(3), r.ErrorsCount)
		assert.Equal(t, int64(1), r.WarningCount)
		assert.Equal(t, int64(1), r.CriticalCount)
		assert.Equal(t, int64(2), r.UniqueUsers)
	}
}

func TestErrors_DistinctErrorTypesAreSeparateGroups(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.ErrorEvent{
		{ProjectID: "p1", Page: "/x", ErrorType: "TypeError", Timestamp: tsMillis(base)},
		{ProjectID: "p1", Page: "/x", ErrorType: "RangeError", Timestamp: tsMillis(base)},
	}
	rows := compute.Errors(events, 5)
	assert.Len(t, rows, 2)
}

func TestCustomEvents_GroupsByEventNameAndPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.CustomEvent{
		{ProjectID: "p1", Name: "signup", Page: "/a", Timestamp: tsMillis(base), UserID: "u1"},
		{ProjectID: "p1", Name: "signup", Page: "/a", Timestamp: tsMillis(base), UserID: "u1"},
		{ProjectID: "p1", Name: "signup", Page: "/b", Timestamp: tsMillis(base)},
	}
	rows := compute.CustomEvents(events, 5)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		if r.Page == "/a" {
			assert.Equal(t, int64(2), r.EventsCount)
			assert.Equal(t, int64(1), r.UniqueUsers)
		}
	}
}

func f64(v float64) *float64 { return &v }

func TestPerformance_ExcludesMissingAndNonPositiveFromSamples(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []eventsentity.Performance{
		{ProjectID: "p1", Page: "/x", Timestamp: tsMillis(base), TTFBMs: f64(100), FCPMs: f64(0)},
		{ProjectID: "p1", Page: "/x", Timestamp: tsMillis(base), TTFBMs: f64(200), FCPMs: nil},
	}
	rows := compute.Performance(events, 5)
	if assert.Len(t, rows, 1) {
		r := rows[0]
		assert.Equal(t, int64(2), r.SamplesCount)
		assert.Equal(t, float64(150), r.AvgTTFBMs)
		assert.Equal(t, float64(0), r.AvgFCPMs) // both excluded: zero and nil
	}
}

func TestPerformance_P95MatchesNearestRank(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var events []eventsentity.Performance
	for i := 1; i <= 10; i++ {
		events = append(events, eventsentity.Performance{
			ProjectID: "p1", Page: "/x", Timestamp: tsMillis(base),
			TTFBMs: f64(float64(i * 10)),
		})
	}
	rows := compute.Performance(events, 5)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, float64(90), rows[0].P95TTFBMs)
	}
}
