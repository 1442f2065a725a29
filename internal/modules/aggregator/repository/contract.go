package repository

import (
	"context"
	"time"
	"voyago/core-api/internal/modules/aggregator/entity"
)

// CommandRepository upserts a batch of rows of kind T for one tick,
// implementing the source's "counts accumulate, uniques/averages replace"
// policy (or full recompute when configured).
type CommandRepository[T any] interface {
	Upsert(ctx context.Context, rows []T) error
}

// WatermarkRepository owns the single aggregation_watermark row.
type WatermarkRepository interface {
	Get(ctx context.Context) (time.Time, error)
	Advance(ctx context.Context, to time.Time) error
}

type TimeRange struct {
	From time.Time
	To   time.Time
}

type Pagination struct {
	Limit  int
	Offset int
}

type PageViewAggFilter struct {
	ProjectID  string
	TimeRange  TimeRange
	Page       string
	Pagination Pagination
}

type ClickAggFilter struct {
	ProjectID  string
	TimeRange  TimeRange
	Page       string
	ElementID  string
	Pagination Pagination
}

type PerformanceAggFilter struct {
	ProjectID  string
	TimeRange  TimeRange
	Page       string
	Pagination Pagination
}

type ErrorAggFilter struct {
	ProjectID  string
	TimeRange  TimeRange
	Page       string
	ErrorType  string
	Pagination Pagination
}

type CustomEventAggFilter struct {
	ProjectID  string
	TimeRange  TimeRange
	EventName  string
	Page       string
	Pagination Pagination
}

type QueryRepository interface {
	GetPageViewsAgg(ctx context.Context, f PageViewAggFilter) ([]entity.PageViewAgg, error)
	GetClicksAgg(ctx context.Context, f ClickAggFilter) ([]entity.ClickAgg, error)
	GetPerformanceAgg(ctx context.Context, f PerformanceAggFilter) ([]entity.PerformanceAgg, error)
	GetErrorsAgg(ctx context.Context, f ErrorAggFilter) ([]entity.ErrorAgg, error)
	GetCustomEventsAgg(ctx context.Context, f CustomEventAggFilter) ([]entity.CustomEventAgg, error)
}
