package entity

import "voyago/core-api/internal/pkg/apperror"

// Performance carries up to four optional page-load timing measurements.
// A nil pointer means "not reported", distinct from a reported zero.
type Performance struct {
	ID              string   `json:"-" gorm:"column:id;type:uuid;primaryKey"`
	ProjectID       string   `json:"project_id" gorm:"column:project_id;type:varchar(255);not null;default:'default'"`
	Page            string   `json:"page" gorm:"column:page;type:text;not null"`
	Timestamp       int64    `json:"timestamp" gorm:"column:timestamp;type:bigint;not null"`
	UserID          string   `json:"user_id,omitempty" gorm:"column:user_id;type:varchar(255)"`
	SessionID       string   `json:"session_id,omitempty" gorm:"column:session_id;type:varchar(255)"`
	TTFBMs          *float64 `json:"ttfb_ms,omitempty" gorm:"column:ttfb_ms;type:double precision"`
	FCPMs           *float64 `json:"fcp_ms,omitempty" gorm:"column:fcp_ms;type:double precision"`
	LCPMs           *float64 `json:"lcp_ms,omitempty" gorm:"column:lcp_ms;type:double precision"`
	TotalPageLoadMs *float64 `json:"total_page_load_ms,omitempty" gorm:"column:total_page_load_ms;type:double precision"`
}

func (Performance) TableName() string { return "performance_events" }

func (e *Performance) ApplyDefaults() {
	if e.ProjectID == "" {
		e.ProjectID = "default"
	}
}

// Validate enforces §3's Performance invariant: any reported timing must be
// non-negative. Page is required per §4.D's validation contract.
func (e *Performance) Validate() error {
	if e.Page == "" {
		return newInvalid(CodeInvalidPerformance, "page", "required")
	}
	timings := []struct {
		field string
		value *float64
	}{
		{"ttfb_ms", e.TTFBMs},
		{"fcp_ms", e.FCPMs},
		{"lcp_ms", e.LCPMs},
		{"total_page_load_ms", e.TotalPageLoadMs},
	}
	for _, t := range timings {
		if t.value != nil && *t.value < 0 {
			return apperror.NewPersistance(CodeInvalidPerformance, "Field '"+t.field+"' must not be negative").
				WithDetail("field", t.field).
				WithDetail("reason", "negative")
		}
	}
	return nil
}
