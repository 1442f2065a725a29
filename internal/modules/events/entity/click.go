package entity

// Click is a browser click event.
type Click struct {
	ID        string `json:"-" gorm:"column:id;type:uuid;primaryKey"`
	ProjectID string `json:"project_id" gorm:"column:project_id;type:varchar(255);not null;default:'default'"`
	Page      string `json:"page" gorm:"column:page;type:text;not null"`
	Timestamp int64  `json:"timestamp" gorm:"column:timestamp;type:bigint;not null"`
	UserID    string `json:"user_id,omitempty" gorm:"column:user_id;type:varchar(255)"`
	SessionID string `json:"session_id,omitempty" gorm:"column:session_id;type:varchar(255)"`
	ElementID string `json:"element_id" gorm:"column:element_id;type:varchar(255);not null"`
	Action    string `json:"action,omitempty" gorm:"column:action;type:varchar(255)"`
}

func (Click) TableName() string { return "click_events" }

func (e *Click) ApplyDefaults() {
	if e.ProjectID == "" {
		e.ProjectID = "default"
	}
}

// Validate enforces §3/§4.D's Click invariants: page and element_id are
// both required.
func (e *Click) Validate() error {
	if e.Page == "" {
		return newInvalid(CodeInvalidClickEvent, "page", "required")
	}
	if e.ElementID == "" {
		return newInvalid(CodeInvalidClickEvent, "element_id", "required")
	}
	return nil
}
