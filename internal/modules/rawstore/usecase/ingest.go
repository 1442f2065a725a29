/*
|------------------------------------------------------------------------------------
| USECASE ARCHITECTURAL STANDARDS & OBSERVABILITY MANIFESTO
|------------------------------------------------------------------------------------
| Usecase pillars adapted to a consumer instead of an HTTP
| handler: anchor log on entry, span per processed message,
| repository errors bubbled untouched so the broker consumer nacks with
| requeue on any failure (parse or DB) per spec §4.E.
|------------------------------------------------------------------------------------
*/
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
	"voyago/core-api/internal/pkg/apperror"
	"voyago/core-api/internal/pkg/uid"
	"voyago/core-api/internal/pkg/utils"
)

// IngestRepositories bundles the five per-kind command repositories the
// processor writes into — one per broker queue.
type IngestRepositories struct {
	PageView    repository.RawCommandRepository[entity.PageView]
	Click       repository.RawCommandRepository[entity.Click]
	Performance repository.RawCommandRepository[entity.Performance]
	ErrorEvent  repository.RawCommandRepository[entity.ErrorEvent]
	CustomEvent repository.RawCommandRepository[entity.CustomEvent]
}

// IngestRawUseCase processes one delivered message body for a given queue
// name, persisting it to the matching raw table.
type IngestRawUseCase interface {
	Process(ctx context.Context, queue string, body []byte) error
}

type ingestRawUseCase struct {
	log   logger.Logger
	trc   tracer.Tracer
	repos IngestRepositories
}

func NewIngestRawUseCase(log logger.Logger, trc tracer.Tracer, repos IngestRepositories) IngestRawUseCase {
	return &ingestRawUseCase{
		log:   log.WithField("action", "usecase:rawstore.ingest"),
		trc:   trc,
		repos: repos,
	}
}

func (uc *ingestRawUseCase) Process(ctx context.Context, queue string, body []byte) error {
	span, ctx := uc.trc.StartSpan(ctx, "usecase:rawstore.ingest")
	defer span.Finish()
	span.SetTag("queue", queue)

	log := uc.log.WithContext(ctx).WithField("queue", queue)

	var err error
	switch queue {
	case config.QueuePageViews:
		err = uc.processPageView(ctx, body)
	case config.QueueClicks:
		err = uc.processClick(ctx, body)
	case config.QueuePerformanceEvent:
		err = uc.processPerformance(ctx, body)
	case config.QueueErrorEvent:
		err = uc.processErrorEvent(ctx, body)
	case config.QueueCustomEvent:
		err = uc.processCustomEvent(ctx, body)
	default:
		err = apperror.NewInternal(apperror.CodeInternalError, fmt.Sprintf("unknown queue %q", queue))
	}

	if err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to persist raw event")
		return err
	}
	return nil
}

func (uc *ingestRawUseCase) processPageView(ctx context.Context, body []byte) error {
	var e entity.PageView
	if err := json.Unmarshal(body, &e); err != nil {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed page_view message", err)
	}
	e.ID = uid.NewEventID()
	return uc.repos.PageView.Insert(ctx, &e)
}

func (uc *ingestRawUseCase) processClick(ctx context.Context, body []byte) error {
	var e entity.Click
	if err := json.Unmarshal(body, &e); err != nil {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed click message", err)
	}
	e.ID = uid.NewEventID()
	return uc.repos.Click.Insert(ctx, &e)
}

func (uc *ingestRawUseCase) processPerformance(ctx context.Context, body []byte) error {
	var e entity.Performance
	if err := json.Unmarshal(body, &e); err != nil {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed performance message", err)
	}
	e.ID = uid.NewEventID()
	return uc.repos.Performance.Insert(ctx, &e)
}

// unknown severity strings arrive as JSON unmarshal failures for the typed
// Severity field only when the value isn't a number at all; out-of-range
// numeric severities are normalized below, matching the gateway's own
// entity.ErrorEvent.Validate fallback (spec §4.E: "unknown severity
// strings map to ERROR").
func (uc *ingestRawUseCase) processErrorEvent(ctx context.Context, body []byte) error {
	var e entity.ErrorEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed error_event message", err)
	}
	e.ID = uid.NewEventID()
	if e.Severity != entity.SeverityWarning && e.Severity != entity.SeverityError && e.Severity != entity.SeverityCritical {
		e.Severity = entity.SeverityError
	}
	return uc.repos.ErrorEvent.Insert(ctx, &e)
}

func (uc *ingestRawUseCase) processCustomEvent(ctx context.Context, body []byte) error {
	var e entity.CustomEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed custom_event message", err)
	}
	e.ID = uid.NewEventID()
	return uc.repos.CustomEvent.Insert(ctx, &e)
}
