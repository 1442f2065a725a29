package usecase

import (
	"context"
	"time"

	"voyago/core-api/internal/infrastructure/logger"
	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

// QueryUseCase serves H's read side directly off the aggregate tables.
type QueryUseCase interface {
	GetPageViewsAgg(ctx context.Context, f repository.PageViewAggFilter) ([]aggentity.PageViewAgg, error)
	GetClicksAgg(ctx context.Context, f repository.ClickAggFilter) ([]aggentity.ClickAgg, error)
	GetPerformanceAgg(ctx context.Context, f repository.PerformanceAggFilter) ([]aggentity.PerformanceAgg, error)
	GetErrorsAgg(ctx context.Context, f repository.ErrorAggFilter) ([]aggentity.ErrorAgg, error)
	GetCustomEventsAgg(ctx context.Context, f repository.CustomEventAggFilter) ([]aggentity.CustomEventAgg, error)
	GetWatermark(ctx context.Context) (time.Time, error)
}

type queryUseCase struct {
	log  logger.Logger
	repo repository.QueryRepository
	wm   repository.WatermarkRepository
}

func NewQueryUseCase(log logger.Logger, repo repository.QueryRepository, wm repository.WatermarkRepository) QueryUseCase {
	return &queryUseCase{log: log.WithField("action", "usecase:aggregator.query"), repo: repo, wm: wm}
}

func (uc *queryUseCase) GetPageViewsAgg(ctx context.Context, f repository.PageViewAggFilter) ([]aggentity.PageViewAgg, error) {
	return uc.repo.GetPageViewsAgg(ctx, f)
}

func (uc *queryUseCase) GetClicksAgg(ctx context.Context, f repository.ClickAggFilter) ([]aggentity.ClickAgg, error) {
	return uc.repo.GetClicksAgg(ctx, f)
}

func (uc *queryUseCase) GetPerformanceAgg(ctx context.Context, f repository.PerformanceAggFilter) ([]aggentity.PerformanceAgg, error) {
	return uc.repo.GetPerformanceAgg(ctx, f)
}

func (uc *queryUseCase) GetErrorsAgg(ctx context.Context, f repository.ErrorAggFilter) ([]aggentity.ErrorAgg, error) {
	return uc.repo.GetErrorsAgg(ctx, f)
}

func (uc *queryUseCase) GetCustomEventsAgg(ctx context.Context, f repository.CustomEventAggFilter) ([]aggentity.CustomEventAgg, error) {
	return uc.repo.GetCustomEventsAgg(ctx, f)
}

func (uc *queryUseCase) GetWatermark(ctx context.Context) (time.Time, error) {
	return uc.wm.Get(ctx)
}
