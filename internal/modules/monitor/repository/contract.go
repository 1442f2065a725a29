package repository

import (
	"context"
	"time"

	"voyago/core-api/internal/modules/monitor/entity"
)

// LogRepository appends probe samples. Append must tolerate DB outages —
// callers log and continue rather than crash the probe loop (spec §4.I).
type LogRepository interface {
	Append(ctx context.Context, log entity.Log) error
}

// PeriodStat is one rollup window's pass/total counts.
type PeriodStat struct {
	OK    int64
	Total int64
}

// Percent returns ok/total*100, or 0 when total is 0 (spec §4.I).
func (p PeriodStat) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.OK) * 100.0 / float64(p.Total)
}

// UptimeRepository answers rolling uptime queries over `logs`.
type UptimeRepository interface {
	Stat(ctx context.Context, serviceName string, since time.Time) (PeriodStat, error)
}
