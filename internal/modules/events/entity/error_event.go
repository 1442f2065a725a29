package entity

// Severity enumerates the error event's severity, matching the wire
// contract's integer encoding exactly.
type Severity int

const (
	SeverityWarning  Severity = 1
	SeverityError    Severity = 2
	SeverityCritical Severity = 3
)

// ErrorEvent is a browser-reported error/exception.
type ErrorEvent struct {
	ID        string   `json:"-" gorm:"column:id;type:uuid;primaryKey"`
	ProjectID string   `json:"project_id" gorm:"column:project_id;type:varchar(255);not null;default:'default'"`
	Page      string   `json:"page" gorm:"column:page;type:text;not null"`
	Timestamp int64    `json:"timestamp" gorm:"column:timestamp;type:bigint;not null"`
	UserID    string   `json:"user_id,omitempty" gorm:"column:user_id;type:varchar(255)"`
	SessionID string   `json:"session_id,omitempty" gorm:"column:session_id;type:varchar(255)"`
	ErrorType string   `json:"error_type" gorm:"column:error_type;type:varchar(255);not null"`
	Message   string   `json:"message" gorm:"column:message;type:text;not null"`
	Stack     string   `json:"stack,omitempty" gorm:"column:stack;type:text"`
	Severity  Severity `json:"severity,omitempty" gorm:"column:severity;type:smallint;not null;default:2"`
}

func (ErrorEvent) TableName() string { return "error_events" }

func (e *ErrorEvent) ApplyDefaults() {
	if e.ProjectID == "" {
		e.ProjectID = "default"
	}
	if e.Severity == 0 {
		e.Severity = SeverityError
	}
}

// Validate enforces §3's ErrorEvent invariants: error_type and message are
// required, page is required per §4.D, and severity — when explicitly
// provided as something other than 1/2/3 — is normalized to ERROR rather
// than rejected (the raw persister applies the same fallback for unknown
// severity strings arriving as raw JSON numbers out of range).
func (e *ErrorEvent) Validate() error {
	if e.Page == "" {
		return newInvalid(CodeInvalidErrorEvent, "page", "required")
	}
	if e.ErrorType == "" {
		return newInvalid(CodeInvalidErrorEvent, "error_type", "required")
	}
	if e.Message == "" {
		return newInvalid(CodeInvalidErrorEvent, "message", "required")
	}
	if e.Severity != SeverityWarning && e.Severity != SeverityError && e.Severity != SeverityCritical {
		e.Severity = SeverityError
	}
	return nil
}
