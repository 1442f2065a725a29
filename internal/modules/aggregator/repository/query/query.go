package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

// aggQueryRepository composes the five per-kind readers behind the single
// QueryRepository interface H's usecase depends on.
type aggQueryRepository struct {
	pageViews *pageViewAggRepository
	clicks    *clickAggRepository
	perf      *performanceAggRepository
	errors    *errorAggRepository
	custom    *customEventAggRepository
}

func NewQueryRepository(db database.Database) repository.QueryRepository {
	return &aggQueryRepository{
		pageViews: NewPageViewAggRepository(db),
		clicks:    NewClickAggRepository(db),
		perf:      NewPerformanceAggRepository(db),
		errors:    NewErrorAggRepository(db),
		custom:    NewCustomEventAggRepository(db),
	}
}

func (r *aggQueryRepository) GetPageViewsAgg(ctx context.Context, f repository.PageViewAggFilter) ([]entity.PageViewAgg, error) {
	return r.pageViews.GetPageViewsAgg(ctx, f)
}

func (r *aggQueryRepository) GetClicksAgg(ctx context.Context, f repository.ClickAggFilter) ([]entity.ClickAgg, error) {
	return r.clicks.GetClicksAgg(ctx, f)
}

func (r *aggQueryRepository) GetPerformanceAgg(ctx context.Context, f repository.PerformanceAggFilter) ([]entity.PerformanceAgg, error) {
	return r.perf.GetPerformanceAgg(ctx, f)
}

func (r *aggQueryRepository) GetErrorsAgg(ctx context.Context, f repository.ErrorAggFilter) ([]entity.ErrorAgg, error) {
	return r.errors.GetErrorsAgg(ctx, f)
}

func (r *aggQueryRepository) GetCustomEventsAgg(ctx context.Context, f repository.CustomEventAggFilter) ([]entity.CustomEventAgg, error) {
	return r.custom.GetCustomEventsAgg(ctx, f)
}
