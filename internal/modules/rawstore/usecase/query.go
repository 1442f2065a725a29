package usecase

import (
	"context"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

// QueryRepositories bundles the five per-kind query repositories behind
// F's read API.
type QueryRepositories struct {
	PageView    repository.PageViewQueryRepository
	Click       repository.ClickQueryRepository
	Performance repository.PerformanceQueryRepository
	ErrorEvent  repository.ErrorQueryRepository
	CustomEvent repository.CustomEventQueryRepository
}

// RawQueryUseCase implements F: one method per event kind (spec §4.E).
// total_count is documented (per spec's explicit callout that "the source
// does not compute an absolute total") to equal len(items) — this
// implementation does not run a separate COUNT(*) query.
type RawQueryUseCase interface {
	GetPageViews(ctx context.Context, f repository.PageViewFilter) ([]entity.PageView, int, error)
	GetClicks(ctx context.Context, f repository.ClickFilter) ([]entity.Click, int, error)
	GetPerformance(ctx context.Context, f repository.PerformanceFilter) ([]entity.Performance, int, error)
	GetErrors(ctx context.Context, f repository.ErrorFilter) ([]entity.ErrorEvent, int, error)
	GetCustomEvents(ctx context.Context, f repository.CustomEventFilter) ([]entity.CustomEvent, int, error)
}

type rawQueryUseCase struct {
	repos QueryRepositories
}

func NewRawQueryUseCase(repos QueryRepositories) RawQueryUseCase {
	return &rawQueryUseCase{repos: repos}
}

func (uc *rawQueryUseCase) GetPageViews(ctx context.Context, f repository.PageViewFilter) ([]entity.PageView, int, error) {
	rows, err := uc.repos.PageView.Get(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}

func (uc *rawQueryUseCase) GetClicks(ctx context.Context, f repository.ClickFilter) ([]entity.Click, int, error) {
	rows, err := uc.repos.Click.Get(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}

func (uc *rawQueryUseCase) GetPerformance(ctx context.Context, f repository.PerformanceFilter) ([]entity.Performance, int, error) {
	rows, err := uc.repos.Performance.Get(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}

func (uc *rawQueryUseCase) GetErrors(ctx context.Context, f repository.ErrorFilter) ([]entity.ErrorEvent, int, error) {
	rows, err := uc.repos.ErrorEvent.Get(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}

func (uc *rawQueryUseCase) GetCustomEvents(ctx context.Context, f repository.CustomEventFilter) ([]entity.CustomEvent, int, error) {
	rows, err := uc.repos.CustomEvent.Get(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}
