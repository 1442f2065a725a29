package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringMap is a map[string]string that knows how to read/write itself as
// a single JSON column — GORM has no native map support for Postgres
// without a driver-specific type (e.g. jsonb), so custom events serialize
// their free-form properties through this adapter.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(value any) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("events: unsupported type for StringMap scan")
	}
	if len(raw) == 0 {
		*m = StringMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

// CustomEvent is an application-defined event with free-form properties.
type CustomEvent struct {
	ID         string    `json:"-" gorm:"column:id;type:uuid;primaryKey"`
	ProjectID  string    `json:"project_id" gorm:"column:project_id;type:varchar(255);not null;default:'default'"`
	Page       string    `json:"page,omitempty" gorm:"column:page;type:text"`
	Timestamp  int64     `json:"timestamp" gorm:"column:timestamp;type:bigint;not null"`
	UserID     string    `json:"user_id,omitempty" gorm:"column:user_id;type:varchar(255)"`
	SessionID  string    `json:"session_id,omitempty" gorm:"column:session_id;type:varchar(255)"`
	Name       string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Properties StringMap `json:"properties,omitempty" gorm:"column:properties;type:text"`
}

func (CustomEvent) TableName() string { return "custom_events" }

func (e *CustomEvent) ApplyDefaults() {
	if e.ProjectID == "" {
		e.ProjectID = "default"
	}
}

// Validate enforces §3's CustomEvent invariant: name is required. Unlike
// the other kinds, page is optional for custom events.
func (e *CustomEvent) Validate() error {
	if e.Name == "" {
		return newInvalid(CodeInvalidCustomEvent, "name", "required")
	}
	return nil
}
