package entity

import "voyago/core-api/internal/pkg/apperror"

// [ENTITY STANDARD: DOMAIN SPECIFIC ERROR]
// One code per event kind, matching the wire contract's `code` field
// exactly — dashboards and the gateway's own tests key off these strings.
const (
	CodeInvalidPageView    = "INVALID_PAGE_VIEW"
	CodeInvalidClickEvent  = "INVALID_CLICK_EVENT"
	CodeInvalidPerformance = "INVALID_PERFORMANCE_EVENT"
	CodeInvalidErrorEvent  = "INVALID_ERROR_EVENT"
	CodeInvalidCustomEvent = "INVALID_CUSTOM_EVENT"
)

func newInvalid(code, field, reason string) *apperror.AppError {
	return apperror.NewPersistance(code, "Field '"+field+"' must not be empty").
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewMalformedJSON builds the per-kind invalid-event error for a request
// body that failed to parse as JSON at all.
func NewMalformedJSON(code string) *apperror.AppError {
	return apperror.NewPersistance(code, "request body is not valid JSON").
		WithDetail("reason", "malformed_json")
}
