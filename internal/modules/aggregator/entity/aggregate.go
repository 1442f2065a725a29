package entity

import "time"

// PageViewAgg is the PageViews rollup row (spec §3 table): one row per
// (time_bucket, project_id, page).
type PageViewAgg struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey"`
	TimeBucket     time.Time `gorm:"column:time_bucket;type:timestamptz;not null"`
	ProjectID      string    `gorm:"column:project_id;type:varchar(255);not null"`
	Page           string    `gorm:"column:page;type:text;not null"`
	ViewsCount     int64     `gorm:"column:views_count;type:bigint;not null;default:0"`
	UniqueUsers    int64     `gorm:"column:unique_users;type:bigint;not null;default:0"`
	UniqueSessions int64     `gorm:"column:unique_sessions;type:bigint;not null;default:0"`
}

func (PageViewAgg) TableName() string { return "agg_page_views" }

// ClickAgg is the Clicks rollup row, grouped additionally by element_id.
type ClickAgg struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey"`
	TimeBucket     time.Time `gorm:"column:time_bucket;type:timestamptz;not null"`
	ProjectID      string    `gorm:"column:project_id;type:varchar(255);not null"`
	Page           string    `gorm:"column:page;type:text;not null"`
	ElementID      string    `gorm:"column:element_id;type:varchar(255);not null"`
	ClicksCount    int64     `gorm:"column:clicks_count;type:bigint;not null;default:0"`
	UniqueUsers    int64     `gorm:"column:unique_users;type:bigint;not null;default:0"`
	UniqueSessions int64     `gorm:"column:unique_sessions;type:bigint;not null;default:0"`
}

func (ClickAgg) TableName() string { return "agg_clicks" }

// PerformanceAgg is the Performance rollup row. Averages and p95s replace
// rather than accumulate on upsert (spec §4.G upsert semantics).
type PerformanceAgg struct {
	ID              string    `gorm:"column:id;type:uuid;primaryKey"`
	TimeBucket      time.Time `gorm:"column:time_bucket;type:timestamptz;not null"`
	ProjectID       string    `gorm:"column:project_id;type:varchar(255);not null"`
	Page            string    `gorm:"column:page;type:text;not null"`
	SamplesCount    int64     `gorm:"column:samples_count;type:bigint;not null;default:0"`
	AvgTTFBMs       float64   `gorm:"column:avg_ttfb_ms;type:double precision;not null;default:0"`
	P95TTFBMs       float64   `gorm:"column:p95_ttfb_ms;type:double precision;not null;default:0"`
	AvgFCPMs        float64   `gorm:"column:avg_fcp_ms;type:double precision;not null;default:0"`
	P95FCPMs        float64   `gorm:"column:p95_fcp_ms;type:double precision;not null;default:0"`
	AvgLCPMs        float64   `gorm:"column:avg_lcp_ms;type:double precision;not null;default:0"`
	P95LCPMs        float64   `gorm:"column:p95_lcp_ms;type:double precision;not null;default:0"`
	AvgTotalLoadMs  float64   `gorm:"column:avg_total_page_load_ms;type:double precision;not null;default:0"`
	P95TotalLoadMs  float64   `gorm:"column:p95_total_page_load_ms;type:double precision;not null;default:0"`
}

func (PerformanceAgg) TableName() string { return "agg_performance" }

// ErrorAgg is the Errors rollup row, grouped additionally by error_type.
type ErrorAgg struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey"`
	TimeBucket    time.Time `gorm:"column:time_bucket;type:timestamptz;not null"`
	ProjectID     string    `gorm:"column:project_id;type:varchar(255);not null"`
	Page          string    `gorm:"column:page;type:text;not null"`
	ErrorType     string    `gorm:"column:error_type;type:varchar(255);not null"`
	ErrorsCount   int64     `gorm:"column:errors_count;type:bigint;not null;default:0"`
	WarningCount  int64     `gorm:"column:warning_count;type:bigint;not null;default:0"`
	CriticalCount int64     `gorm:"column:critical_count;type:bigint;not null;default:0"`
	UniqueUsers   int64     `gorm:"column:unique_users;type:bigint;not null;default:0"`
}

func (ErrorAgg) TableName() string { return "agg_errors" }

// CustomEventAgg is the CustomEvents rollup row, grouped additionally by
// event_name.
type CustomEventAgg struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey"`
	TimeBucket     time.Time `gorm:"column:time_bucket;type:timestamptz;not null"`
	ProjectID      string    `gorm:"column:project_id;type:varchar(255);not null"`
	EventName      string    `gorm:"column:event_name;type:varchar(255);not null"`
	Page           string    `gorm:"column:page;type:text;not null"`
	EventsCount    int64     `gorm:"column:events_count;type:bigint;not null;default:0"`
	UniqueUsers    int64     `gorm:"column:unique_users;type:bigint;not null;default:0"`
	UniqueSessions int64     `gorm:"column:unique_sessions;type:bigint;not null;default:0"`
}

func (CustomEventAgg) TableName() string { return "agg_custom_events" }

// Watermark is the sole row of aggregation_watermark, owned exclusively by
// the aggregator.
type Watermark struct {
	ID               int       `gorm:"column:id;type:smallint;primaryKey"`
	LastAggregatedAt time.Time `gorm:"column:last_aggregated_at;type:timestamptz;not null"`
}

func (Watermark) TableName() string { return "aggregation_watermark" }
