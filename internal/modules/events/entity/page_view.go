package entity

// PageView is one browser page-view event as received by the ingestion
// gateway and persisted verbatim (plus a synthetic id) by the raw persister.
type PageView struct {
	ID        string `json:"-" gorm:"column:id;type:uuid;primaryKey"`
	ProjectID string `json:"project_id" gorm:"column:project_id;type:varchar(255);not null;default:'default'"`
	Page      string `json:"page" gorm:"column:page;type:text;not null"`
	Timestamp int64  `json:"timestamp" gorm:"column:timestamp;type:bigint;not null"`
	UserID    string `json:"user_id,omitempty" gorm:"column:user_id;type:varchar(255)"`
	SessionID string `json:"session_id,omitempty" gorm:"column:session_id;type:varchar(255)"`
	Referrer  string `json:"referrer,omitempty" gorm:"column:referrer;type:text"`
}

func (PageView) TableName() string { return "page_views" }

// ApplyDefaults fills in the project_id default the spec requires when the
// field is absent from the request body.
func (e *PageView) ApplyDefaults() {
	if e.ProjectID == "" {
		e.ProjectID = "default"
	}
}

// Validate enforces §3's PageView invariants: page is required, timestamp
// is required (zero is treated as missing, matching the gateway's wire
// contract — example 2 in the spec sends timestamp:0 for an invalid event).
func (e *PageView) Validate() error {
	if e.Page == "" {
		return newInvalid(CodeInvalidPageView, "page", "required")
	}
	if e.Timestamp == 0 {
		return newInvalid(CodeInvalidPageView, "timestamp", "required")
	}
	return nil
}
