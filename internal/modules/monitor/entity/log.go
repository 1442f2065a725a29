package entity

import "time"

// LogResult enumerates the two outcomes a probe can append to `logs`.
type LogResult string

const (
	ResultOK   LogResult = "OK"
	ResultFail LogResult = "FAIL"
)

// Log is one append-only probe sample (spec §4.I: `logs(service_name,
// log_message, timestamp)`).
type Log struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	ServiceName string    `gorm:"column:service_name;type:varchar(255);not null"`
	LogMessage  string    `gorm:"column:log_message;type:varchar(16);not null"`
	Timestamp   time.Time `gorm:"column:timestamp;type:timestamptz;not null"`
}

func (Log) TableName() string { return "logs" }
