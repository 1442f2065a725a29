package entity_test

import (
	"encoding/json"
	"testing"

	"voyago/core-api/internal/modules/events/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Round-trip property (spec §8): every event kind survives
// JSON -> struct -> JSON unchanged in every field the client controls.
// ID is synthetic (assigned by the persister, absent from the wire
// contract via `json:"-"`) and therefore excluded from the comparison.

func TestPageView_JSONRoundTrip(t *testing.T) {
	original := entity.PageView{
		ProjectID: "acme",
		Page:      "/home",
		Timestamp: 1700000000000,
		UserID:    "u1",
		SessionID: "s1",
		Referrer:  "https://google.com",
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.PageView
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Equal(t, original, roundTripped)
}

func TestClick_JSONRoundTrip(t *testing.T) {
	original := entity.Click{
		ProjectID: "acme",
		Page:      "/home",
		Timestamp: 1700000000000,
		UserID:    "u1",
		SessionID: "s1",
		ElementID: "btn-1",
		Action:    "click",
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.Click
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Equal(t, original, roundTripped)
}

func TestPerformance_JSONRoundTrip(t *testing.T) {
	ttfb, fcp, lcp, total := 10.0, 20.0, 30.0, 40.0
	original := entity.Performance{
		ProjectID:       "acme",
		Page:            "/home",
		Timestamp:       1700000000000,
		UserID:          "u1",
		SessionID:       "s1",
		TTFBMs:          &ttfb,
		FCPMs:           &fcp,
		LCPMs:           &lcp,
		TotalPageLoadMs: &total,
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.Performance
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	require.NotNil(t, roundTripped.TTFBMs)
	assert.Equal(t, *original.TTFBMs, *roundTripped.TTFBMs)
	require.NotNil(t, roundTripped.TotalPageLoadMs)
	assert.Equal(t, *original.TotalPageLoadMs, *roundTripped.TotalPageLoadMs)
	assert.Equal(t, original.Page, roundTripped.Page)
}

func TestPerformance_JSONRoundTrip_NilTimingsStayNil(t *testing.T) {
	original := entity.Performance{Page: "/home", Timestamp: 1}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.Performance
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Nil(t, roundTripped.TTFBMs)
	assert.Nil(t, roundTripped.TotalPageLoadMs)
}

func TestErrorEvent_JSONRoundTrip(t *testing.T) {
	original := entity.ErrorEvent{
		ProjectID: "acme",
		Page:      "/checkout",
		Timestamp: 1700000000000,
		UserID:    "u1",
		SessionID: "s1",
		ErrorType: "V",
		Message:   "boom",
		Stack:     "at foo()",
		Severity:  entity.SeverityCritical,
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.ErrorEvent
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Equal(t, original, roundTripped)
}

func TestCustomEvent_JSONRoundTrip(t *testing.T) {
	original := entity.CustomEvent{
		ProjectID:  "acme",
		Page:       "/signup",
		Timestamp:  1700000000000,
		UserID:     "u1",
		SessionID:  "s1",
		Name:       "signup_completed",
		Properties: entity.StringMap{"plan": "pro"},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var roundTripped entity.CustomEvent
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	assert.Equal(t, original, roundTripped)
}

// ID is never part of the wire contract (json:"-"), so a populated ID on
// the sender side must not leak into the serialized payload at all.
func TestPageView_JSONRoundTrip_IDIsExcludedFromWire(t *testing.T) {
	original := entity.PageView{ID: "server-assigned-uuid", Page: "/home", Timestamp: 1}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, hasID := decoded["id"]
	assert.False(t, hasID)

	var roundTripped entity.PageView
	require.NoError(t, json.Unmarshal(raw, &roundTripped))
	assert.Empty(t, roundTripped.ID)
}
