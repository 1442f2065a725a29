package repository

import (
	"context"
	"voyago/core-api/internal/modules/events/entity"
)

// -------- Repository Command --------

// RawCommandRepository appends one already-validated event of kind T to
// its raw table. One instance per event kind, mirroring the five fixed
// broker queues.
type RawCommandRepository[T any] interface {
	Insert(ctx context.Context, e *T) error
}

// -------- Filters shared by every Get* query --------

type TimeRange struct {
	Start int64 // inclusive, seconds since epoch; 0 means unbounded
	End   int64 // inclusive, seconds since epoch; 0 means unbounded
}

type Pagination struct {
	Limit  int
	Offset int
}

type PageViewFilter struct {
	TimeRange    TimeRange
	PageFilter   string
	UserIDFilter string
	Pagination   Pagination
}

type ClickFilter struct {
	TimeRange       TimeRange
	PageFilter      string
	ElementIDFilter string
	UserIDFilter    string
	Pagination      Pagination
}

type PerformanceFilter struct {
	TimeRange    TimeRange
	PageFilter   string
	UserIDFilter string
	Pagination   Pagination
}

type ErrorFilter struct {
	TimeRange       TimeRange
	PageFilter      string
	ErrorTypeFilter string
	SeverityFilter  int
	UserIDFilter    string
	Pagination      Pagination
}

type CustomEventFilter struct {
	TimeRange    TimeRange
	NameFilter   string
	UserIDFilter string
	Pagination   Pagination
}

// -------- Repository Query --------

type PageViewQueryRepository interface {
	Get(ctx context.Context, f PageViewFilter) ([]entity.PageView, error)
}

type ClickQueryRepository interface {
	Get(ctx context.Context, f ClickFilter) ([]entity.Click, error)
}

type PerformanceQueryRepository interface {
	Get(ctx context.Context, f PerformanceFilter) ([]entity.Performance, error)
}

type ErrorQueryRepository interface {
	Get(ctx context.Context, f ErrorFilter) ([]entity.ErrorEvent, error)
}

type CustomEventQueryRepository interface {
	Get(ctx context.Context, f CustomEventFilter) ([]entity.CustomEvent, error)
}
