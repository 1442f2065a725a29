package usecase

import (
	"context"
	"time"

	"voyago/core-api/internal/modules/monitor/repository"
	"voyago/core-api/internal/pkg/apperror"
)

// Period names the four rolling windows the uptime surface reports.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

var periodWindows = map[Period]time.Duration{
	PeriodDay:   24 * time.Hour,
	PeriodWeek:  7 * 24 * time.Hour,
	PeriodMonth: 30 * 24 * time.Hour,
	PeriodYear:  365 * 24 * time.Hour,
}

// UptimeResult carries one period's pass/total/percent triple.
type UptimeResult struct {
	OK      int64
	Total   int64
	Percent float64
}

// UptimeUseCase answers `GET /uptime` requests with the four rolling
// windows, or a single one when a specific period is requested.
type UptimeUseCase interface {
	Get(ctx context.Context, serviceName string, period Period) (map[Period]UptimeResult, error)
}

type uptimeUseCase struct {
	repo repository.UptimeRepository
}

func NewUptimeUseCase(repo repository.UptimeRepository) UptimeUseCase {
	return &uptimeUseCase{repo: repo}
}

func (uc *uptimeUseCase) Get(ctx context.Context, serviceName string, period Period) (map[Period]UptimeResult, error) {
	periods := []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
	if period != "" {
		if _, ok := periodWindows[period]; !ok {
			return nil, apperror.NewPersistance(apperror.CodeMalformedRequest, "invalid period: expected day|week|month|year")
		}
		periods = []Period{period}
	}

	now := time.Now().UTC()
	result := make(map[Period]UptimeResult, len(periods))
	for _, p := range periods {
		stat, err := uc.repo.Stat(ctx, serviceName, now.Add(-periodWindows[p]))
		if err != nil {
			return nil, err
		}
		result[p] = UptimeResult{OK: stat.OK, Total: stat.Total, Percent: stat.Percent()}
	}
	return result, nil
}
