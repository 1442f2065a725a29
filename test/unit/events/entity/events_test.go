package entity_test

import (
	"testing"

	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailsOf(t *testing.T, err error) map[string]any {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	details, ok := appErr.Details.(map[string]any)
	require.True(t, ok, "expected map[string]any details, got %T", appErr.Details)
	return details
}

// ============================================================================
// PageView
// ============================================================================

func TestPageView_Validate_Success(t *testing.T) {
	e := &entity.PageView{Page: "/home", Timestamp: 1700000000000}
	assert.NoError(t, e.Validate())
}

// Scenario 2 (spec §8): a missing page field is rejected with the exact
// error shape {field:"page", reason:"required"}.
func TestPageView_Validate_MissingPage(t *testing.T) {
	e := &entity.PageView{UserID: "u1", Timestamp: 0}
	err := e.Validate()
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, entity.CodeInvalidPageView, appErr.Code)

	details := detailsOf(t, err)
	assert.Equal(t, "page", details["field"])
	assert.Equal(t, "required", details["reason"])
}

func TestPageView_ApplyDefaults_FillsProjectID(t *testing.T) {
	e := &entity.PageView{Page: "/home"}
	e.ApplyDefaults()
	assert.Equal(t, "default", e.ProjectID)
}

func TestPageView_ApplyDefaults_DoesNotOverrideExplicitProjectID(t *testing.T) {
	e := &entity.PageView{Page: "/home", ProjectID: "acme"}
	e.ApplyDefaults()
	assert.Equal(t, "acme", e.ProjectID)
}

// ============================================================================
// Click
// ============================================================================

func TestClick_Validate_Success(t *testing.T) {
	e := &entity.Click{Page: "/home", ElementID: "btn-1"}
	assert.NoError(t, e.Validate())
}

func TestClick_Validate_MissingPage(t *testing.T) {
	e := &entity.Click{ElementID: "btn-1"}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "page", details["field"])
}

func TestClick_Validate_MissingElementID(t *testing.T) {
	e := &entity.Click{Page: "/home"}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "element_id", details["field"])
}

// ============================================================================
// Performance
// ============================================================================

func TestPerformance_Validate_Success(t *testing.T) {
	load := 120.5
	e := &entity.Performance{Page: "/home", TotalPageLoadMs: &load}
	assert.NoError(t, e.Validate())
}

func TestPerformance_Validate_NilTimingsAreAllowed(t *testing.T) {
	e := &entity.Performance{Page: "/home"}
	assert.NoError(t, e.Validate())
}

func TestPerformance_Validate_NegativeTimingRejected(t *testing.T) {
	negative := -1.0
	e := &entity.Performance{Page: "/home", TTFBMs: &negative}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "ttfb_ms", details["field"])
	assert.Equal(t, "negative", details["reason"])
}

func TestPerformance_Validate_MissingPage(t *testing.T) {
	e := &entity.Performance{}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "page", details["field"])
}

// ============================================================================
// ErrorEvent
// ============================================================================

func TestErrorEvent_Validate_Success(t *testing.T) {
	e := &entity.ErrorEvent{Page: "/checkout", ErrorType: "V", Message: "boom", Severity: entity.SeverityWarning}
	assert.NoError(t, e.Validate())
}

func TestErrorEvent_Validate_MissingErrorType(t *testing.T) {
	e := &entity.ErrorEvent{Page: "/checkout", Message: "boom"}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "error_type", details["field"])
}

func TestErrorEvent_Validate_MissingMessage(t *testing.T) {
	e := &entity.ErrorEvent{Page: "/checkout", ErrorType: "V"}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "message", details["field"])
}

// Spec scenario 4 relies on out-of-range severities being normalized
// rather than rejected so malformed-but-parseable beacons still count.
func TestErrorEvent_Validate_NormalizesOutOfRangeSeverity(t *testing.T) {
	e := &entity.ErrorEvent{Page: "/checkout", ErrorType: "V", Message: "boom", Severity: entity.Severity(99)}
	require.NoError(t, e.Validate())
	assert.Equal(t, entity.SeverityError, e.Severity)
}

func TestErrorEvent_ApplyDefaults_FillsErrorSeverityWhenZero(t *testing.T) {
	e := &entity.ErrorEvent{Page: "/checkout", ErrorType: "V", Message: "boom"}
	e.ApplyDefaults()
	assert.Equal(t, entity.SeverityError, e.Severity)
}

// ============================================================================
// CustomEvent
// ============================================================================

func TestCustomEvent_Validate_Success(t *testing.T) {
	e := &entity.CustomEvent{Name: "signup_completed"}
	assert.NoError(t, e.Validate())
}

func TestCustomEvent_Validate_PageIsOptional(t *testing.T) {
	e := &entity.CustomEvent{Name: "signup_completed", Page: ""}
	assert.NoError(t, e.Validate())
}

func TestCustomEvent_Validate_MissingName(t *testing.T) {
	e := &entity.CustomEvent{Page: "/signup"}
	details := detailsOf(t, e.Validate())
	assert.Equal(t, "name", details["field"])
}

func TestCustomEvent_StringMap_ValueAndScanRoundTrip(t *testing.T) {
	m := entity.StringMap{"plan": "pro", "source": "ad"}

	raw, err := m.Value()
	require.NoError(t, err)

	var scanned entity.StringMap
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, m, scanned)
}

func TestCustomEvent_StringMap_ScanNilYieldsEmptyMap(t *testing.T) {
	var scanned entity.StringMap
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)
}
