/*
|------------------------------------------------------------------------------------
| USECASE ARCHITECTURAL STANDARDS & OBSERVABILITY MANIFESTO
|------------------------------------------------------------------------------------
| One tick: read the watermark, pull everything since it from F, reduce
| each kind with the compute package, upsert every kind's rows, and only
| then advance the watermark. Any failure in fetch or upsert aborts the
| tick without advancing — the next tick re-pulls the same window, so the
| upsert's accumulate semantics (spec §4.G) make replays safe.
|------------------------------------------------------------------------------------
*/
package usecase

import (
	"context"
	"time"

	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/aggregator/client"
	"voyago/core-api/internal/modules/aggregator/compute"
	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
	"voyago/core-api/internal/pkg/utils"
)

// CommandRepositories bundles the five per-kind upsert repositories a tick
// writes into, plus the watermark repository that gates replay safety.
type CommandRepositories struct {
	PageView    repository.CommandRepository[aggentity.PageViewAgg]
	Click       repository.CommandRepository[aggentity.ClickAgg]
	Performance repository.CommandRepository[aggentity.PerformanceAgg]
	ErrorEvent  repository.CommandRepository[aggentity.ErrorAgg]
	CustomEvent repository.CommandRepository[aggentity.CustomEventAgg]
	Watermark   repository.WatermarkRepository
}

// TickUseCase runs one aggregation cycle.
type TickUseCase interface {
	Run(ctx context.Context) error
}

type tickUseCase struct {
	log           logger.Logger
	trc           tracer.Tracer
	raw           client.RawClient
	repos         CommandRepositories
	bucketMinutes int
}

func NewTickUseCase(log logger.Logger, trc tracer.Tracer, raw client.RawClient, repos CommandRepositories, bucketMinutes int) TickUseCase {
	return &tickUseCase{
		log:           log.WithField("action", "usecase:aggregator.tick"),
		trc:           trc,
		raw:           raw,
		repos:         repos,
		bucketMinutes: bucketMinutes,
	}
}

func (uc *tickUseCase) Run(ctx context.Context) error {
	span, ctx := uc.trc.StartSpan(ctx, "usecase:aggregator.tick")
	defer span.Finish()

	log := uc.log.WithContext(ctx)

	from, err := uc.repos.Watermark.Get(ctx)
	if err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to read aggregation watermark")
		return err
	}

	now := time.Now().UTC()
	if !now.After(from) {
		return nil
	}

	tr := client.TimeRange{Start: from.Unix(), End: now.Unix()}
	span.SetTag("window_start", from.Unix())
	span.SetTag("window_end", now.Unix())

	events, err := uc.raw.FetchAllEvents(ctx, tr)
	if err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to fetch raw events for tick")
		return err
	}

	pageViewRows := compute.PageViews(events.PageViews, uc.bucketMinutes)
	clickRows := compute.Clicks(events.Clicks, uc.bucketMinutes)
	perfRows := compute.Performance(events.Performance, uc.bucketMinutes)
	errorRows := compute.Errors(events.Errors, uc.bucketMinutes)
	customRows := compute.CustomEvents(events.Custom, uc.bucketMinutes)

	if err := uc.repos.PageView.Upsert(ctx, pageViewRows); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to upsert page view aggregates")
		return err
	}
	if err := uc.repos.Click.Upsert(ctx, clickRows); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to upsert click aggregates")
		return err
	}
	if err := uc.repos.Performance.Upsert(ctx, perfRows); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to upsert performance aggregates")
		return err
	}
	if err := uc.repos.ErrorEvent.Upsert(ctx, errorRows); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to upsert error aggregates")
		return err
	}
	if err := uc.repos.CustomEvent.Upsert(ctx, customRows); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to upsert custom event aggregates")
		return err
	}

	// The watermark moves to now, not to the newest event timestamp: an event
	// stored after this tick whose timestamp is earlier than now (truncated
	// to the second) is not fetched by any later tick.
	if err := uc.repos.Watermark.Advance(ctx, now); err != nil {
		utils.RecordSpanError(span, err)
		log.WithField("error", err.Error()).Warn("failed to advance aggregation watermark")
		return err
	}

	log.WithFields(map[string]interface{}{
		"page_views":    len(pageViewRows),
		"clicks":        len(clickRows),
		"performance":   len(perfRows),
		"errors":        len(errorRows),
		"custom_events": len(customRows),
	}).Info("aggregation tick completed")

	return nil
}
