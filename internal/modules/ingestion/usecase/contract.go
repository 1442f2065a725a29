package usecase

import (
	"context"
	"voyago/core-api/internal/modules/events/entity"
)

// PublishPageViewUseCase validates and enqueues a PageView event.
type PublishPageViewUseCase interface {
	Execute(ctx context.Context, e *entity.PageView) error
}

// PublishClickUseCase validates and enqueues a Click event.
type PublishClickUseCase interface {
	Execute(ctx context.Context, e *entity.Click) error
}

// PublishPerformanceUseCase validates and enqueues a Performance event.
type PublishPerformanceUseCase interface {
	Execute(ctx context.Context, e *entity.Performance) error
}

// PublishErrorEventUseCase validates and enqueues an ErrorEvent.
type PublishErrorEventUseCase interface {
	Execute(ctx context.Context, e *entity.ErrorEvent) error
}

// PublishCustomEventUseCase validates and enqueues a CustomEvent.
type PublishCustomEventUseCase interface {
	Execute(ctx context.Context, e *entity.CustomEvent) error
}
