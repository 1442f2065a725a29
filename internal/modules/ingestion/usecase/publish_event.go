/*
|------------------------------------------------------------------------------------
| USECASE ARCHITECTURAL STANDARDS & OBSERVABILITY MANIFESTO
|------------------------------------------------------------------------------------
| Usecase pillars: interface-first,
| anchor log on entry, span-recorded errors, bubble repository/infra errors
| without re-logging. The ingestion usecases have no transaction to run —
| "persistence" here is "publish to the broker" — so Atomic is not used.
|------------------------------------------------------------------------------------
*/
package usecase

import (
	"context"
	"encoding/json"
	"voyago/core-api/internal/infrastructure/broker"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/apperror"
	"voyago/core-api/internal/pkg/utils"
)

// validatable is satisfied by every event entity: defaults are applied
// before validation so an absent project_id never trips a "required" check.
type validatable interface {
	ApplyDefaults()
	Validate() error
}

// eventPublisher is the shared implementation behind all five Publish*UseCase
// types — only the queue name, span name, and concrete entity type differ.
type eventPublisher struct {
	log       logger.Logger
	trc       tracer.Tracer
	publisher *broker.Publisher
	queue     string
	spanName  string
}

func (p *eventPublisher) publish(ctx context.Context, e validatable) error {
	span, ctx := p.trc.StartSpan(ctx, p.spanName)
	defer span.Finish()

	log := p.log.WithContext(ctx).WithField("method", "Execute")

	e.ApplyDefaults()

	if err := e.Validate(); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("event validation failed")
		return err
	}

	body, err := json.Marshal(e)
	if err != nil {
		wrapped := apperror.NewInternal(apperror.CodeInternalError, "failed to encode event", err)
		utils.RecordSpanError(span, wrapped)
		return wrapped
	}

	if err := p.publisher.Enqueue(ctx, p.queue, body); err != nil {
		utils.RecordSpanError(span, err)
		return err
	}

	log.Info("event published")
	return nil
}

// -------- PageView --------

type publishPageViewUseCase struct{ *eventPublisher }

var _ PublishPageViewUseCase = (*publishPageViewUseCase)(nil)

func NewPublishPageViewUseCase(log logger.Logger, trc tracer.Tracer, pub *broker.Publisher, queue string) PublishPageViewUseCase {
	return &publishPageViewUseCase{&eventPublisher{log: log.WithField("action", "usecase:ingestion.publish_page_view"), trc: trc, publisher: pub, queue: queue, spanName: "usecase:ingestion.publish_page_view"}}
}

func (uc *publishPageViewUseCase) Execute(ctx context.Context, e *entity.PageView) error {
	return uc.publish(ctx, e)
}

// -------- Click --------

type publishClickUseCase struct{ *eventPublisher }

var _ PublishClickUseCase = (*publishClickUseCase)(nil)

func NewPublishClickUseCase(log logger.Logger, trc tracer.Tracer, pub *broker.Publisher, queue string) PublishClickUseCase {
	return &publishClickUseCase{&eventPublisher{log: log.WithField("action", "usecase:ingestion.publish_click"), trc: trc, publisher: pub, queue: queue, spanName: "usecase:ingestion.publish_click"}}
}

func (uc *publishClickUseCase) Execute(ctx context.Context, e *entity.Click) error {
	return uc.publish(ctx, e)
}

// -------- Performance --------

type publishPerformanceUseCase struct{ *eventPublisher }

var _ PublishPerformanceUseCase = (*publishPerformanceUseCase)(nil)

func NewPublishPerformanceUseCase(log logger.Logger, trc tracer.Tracer, pub *broker.Publisher, queue string) PublishPerformanceUseCase {
	return &publishPerformanceUseCase{&eventPublisher{log: log.WithField("action", "usecase:ingestion.publish_performance"), trc: trc, publisher: pub, queue: queue, spanName: "usecase:ingestion.publish_performance"}}
}

func (uc *publishPerformanceUseCase) Execute(ctx context.Context, e *entity.Performance) error {
	return uc.publish(ctx, e)
}

// -------- ErrorEvent --------

type publishErrorEventUseCase struct{ *eventPublisher }

var _ PublishErrorEventUseCase = (*publishErrorEventUseCase)(nil)

func NewPublishErrorEventUseCase(log logger.Logger, trc tracer.Tracer, pub *broker.Publisher, queue string) PublishErrorEventUseCase {
	return &publishErrorEventUseCase{&eventPublisher{log: log.WithField("action", "usecase:ingestion.publish_error_event"), trc: trc, publisher: pub, queue: queue, spanName: "usecase:ingestion.publish_error_event"}}
}

func (uc *publishErrorEventUseCase) Execute(ctx context.Context, e *entity.ErrorEvent) error {
	return uc.publish(ctx, e)
}

// -------- CustomEvent --------

type publishCustomEventUseCase struct{ *eventPublisher }

var _ PublishCustomEventUseCase = (*publishCustomEventUseCase)(nil)

func NewPublishCustomEventUseCase(log logger.Logger, trc tracer.Tracer, pub *broker.Publisher, queue string) PublishCustomEventUseCase {
	return &publishCustomEventUseCase{&eventPublisher{log: log.WithField("action", "usecase:ingestion.publish_custom_event"), trc: trc, publisher: pub, queue: queue, spanName: "usecase:ingestion.publish_custom_event"}}
}

func (uc *publishCustomEventUseCase) Execute(ctx context.Context, e *entity.CustomEvent) error {
	return uc.publish(ctx, e)
}
