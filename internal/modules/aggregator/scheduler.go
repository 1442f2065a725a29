package aggregator

import (
	"context"
	"time"

	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/aggregator/usecase"
)

// Scheduler drives TickUseCase on a fixed interval. Ticks never overlap:
// a slow tick simply delays the next one rather than running concurrently.
type Scheduler struct {
	log      logger.Logger
	tick     usecase.TickUseCase
	interval time.Duration
}

func NewScheduler(log logger.Logger, tick usecase.TickUseCase, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Scheduler{log: log.WithField("component", "scheduler"), tick: tick, interval: interval}
}

// Run blocks, ticking until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tick.Run(ctx); err != nil {
				s.log.WithField("error", err.Error()).Warn("aggregation tick failed, watermark not advanced")
			}
		}
	}
}
