/*
|------------------------------------------------------------------------------------
| SCHEDULER ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| Direct port of original_source/monitoring-service/src/monitor.cpp's
| run_monitoring_loop: a single 1s tick checks every target's two
| independent due-times (ping every T_ping, ready every T_ready) and runs
| whichever are due, sequentially per target — the source accepts that at
| these rates, and so do we (spec §4.I "sequentially per target is
| acceptable at specified rates").
|------------------------------------------------------------------------------------
*/
package scheduler

import (
	"context"
	"time"

	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/monitor/entity"
	"voyago/core-api/internal/modules/monitor/prober"
	"voyago/core-api/internal/modules/monitor/repository"
)

type targetState struct {
	target    config.MonitorTarget
	lastPing  time.Time
	lastReady time.Time
}

// Scheduler runs the probe loop for every configured target.
type Scheduler struct {
	log          logger.Logger
	prober       *prober.Prober
	logs         repository.LogRepository
	targets      []*targetState
	pingInterval time.Duration
	readyInterval time.Duration
}

func New(log logger.Logger, p *prober.Prober, logs repository.LogRepository, targets []config.MonitorTarget, pingInterval, readyInterval time.Duration) *Scheduler {
	if pingInterval <= 0 {
		pingInterval = 15 * time.Second
	}
	if readyInterval <= 0 {
		readyInterval = 45 * time.Second
	}
	states := make([]*targetState, 0, len(targets))
	for _, t := range targets {
		states = append(states, &targetState{target: t})
	}
	return &Scheduler{
		log:           log.WithField("component", "monitor.scheduler"),
		prober:        p,
		logs:          logs,
		targets:       states,
		pingInterval:  pingInterval,
		readyInterval: readyInterval,
	}
}

// Run blocks, ticking every second until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, st := range s.targets {
				if now.Sub(st.lastPing) >= s.pingInterval {
					st.lastPing = now
					s.runPing(ctx, st.target)
				}
				if now.Sub(st.lastReady) >= s.readyInterval {
					st.lastReady = now
					s.runReady(ctx, st.target)
				}
			}
		}
	}
}

func (s *Scheduler) runPing(ctx context.Context, t config.MonitorTarget) {
	res := s.prober.Ping(ctx, t.Host, t.Port)
	s.record(ctx, t.Name, res.Reachable && res.OK)
	if !res.Reachable {
		s.log.WithField("target", t.Name).Warn("target unreachable (liveness failed)")
	} else if !res.OK {
		s.log.WithField("target", t.Name).Warn("target liveness check failed")
	}
}

func (s *Scheduler) runReady(ctx context.Context, t config.MonitorTarget) {
	res := s.prober.Ready(ctx, t.Host, t.Port)
	s.record(ctx, t.Name, res.Reachable && res.OK)
	if !res.Reachable {
		s.log.WithField("target", t.Name).Warn("target readiness check failed")
	} else if !res.OK {
		s.log.WithField("target", t.Name).Warn("target not ready or dependency failure")
	}
}

// record appends one probe sample, tolerating DB outages: a failed write
// is logged but never crashes the loop.
func (s *Scheduler) record(ctx context.Context, serviceName string, ok bool) {
	result := entity.ResultFail
	if ok {
		result = entity.ResultOK
	}
	log := entity.Log{ServiceName: serviceName, LogMessage: string(result), Timestamp: time.Now().UTC()}
	if err := s.logs.Append(ctx, log); err != nil {
		s.log.WithField("error", err.Error()).WithField("target", serviceName).Error("failed to persist probe result")
	}
}
