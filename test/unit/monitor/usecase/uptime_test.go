package usecase_test

import (
	"context"
	"testing"
	"time"

	"voyago/core-api/internal/modules/monitor/repository"
	"voyago/core-api/internal/modules/monitor/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUptimeRepository struct {
	mock.Mock
}

func (m *MockUptimeRepository) Stat(ctx context.Context, serviceName string, since time.Time) (repository.PeriodStat, error) {
	args := m.Called(ctx, serviceName, since)
	return args.Get(0).(repository.PeriodStat), args.Error(1)
}

func TestGet_NoPeriodReturnsAllFourWindows(t *testing.T) {
	repo := new(MockUptimeRepository)
	repo.On("Stat", mock.Anything, "raw-persister", mock.Anything).
		Return(repository.PeriodStat{OK: 9, Total: 10}, nil)

	uc := usecase.NewUptimeUseCase(repo)
	result, err := uc.Get(context.Background(), "raw-persister", "")

	assert.NoError(t, err)
	assert.Len(t, result, 4)
	for _, p := range []usecase.Period{usecase.PeriodDay, usecase.PeriodWeek, usecase.PeriodMonth, usecase.PeriodYear} {
		r, ok := result[p]
		assert.True(t, ok, "missing period %s", p)
		assert.Equal(t, int64(9), r.OK)
		assert.Equal(t, int64(10), r.Total)
		assert.Equal(t, float64(90), r.Percent)
	}
	repo.AssertNumberOfCalls(t, "Stat", 4)
}

func TestGet_SpecificPeriodReturnsOnlyThatWindow(t *testing.T) {
	repo := new(MockUptimeRepository)
	repo.On("Stat", mock.Anything, "raw-persister", mock.Anything).
		Return(repository.PeriodStat{OK: 5, Total: 5}, nil)

	uc := usecase.NewUptimeUseCase(repo)
	result, err := uc.Get(context.Background(), "raw-persister", usecase.PeriodWeek)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	r, ok := result[usecase.PeriodWeek]
	assert.True(t, ok)
	assert.Equal(t, float64(100), r.Percent)
	repo.AssertNumberOfCalls(t, "Stat", 1)
}

func TestGet_InvalidPeriodReturnsError(t *testing.T) {
	repo := new(MockUptimeRepository)
	uc := usecase.NewUptimeUseCase(repo)

	_, err := uc.Get(context.Background(), "raw-persister", usecase.Period("fortnight"))
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything, mock.Anything)
}

func TestGet_ZeroTotalYieldsZeroPercentNotDivideByZero(t *testing.T) {
	repo := new(MockUptimeRepository)
	repo.On("Stat", mock.Anything, "raw-persister", mock.Anything).
		Return(repository.PeriodStat{OK: 0, Total: 0}, nil)

	uc := usecase.NewUptimeUseCase(repo)
	result, err := uc.Get(context.Background(), "raw-persister", usecase.PeriodDay)

	assert.NoError(t, err)
	assert.Equal(t, float64(0), result[usecase.PeriodDay].Percent)
}

// Scenario 6 (spec §8): two OK pings and one FAIL within the window yield
// a 66.666...% rollup.
func TestGet_TwoOkOfThreeYieldsTwoThirdsPercent(t *testing.T) {
	repo := new(MockUptimeRepository)
	repo.On("Stat", mock.Anything, "service-X", mock.Anything).
		Return(repository.PeriodStat{OK: 2, Total: 3}, nil)

	uc := usecase.NewUptimeUseCase(repo)
	result, err := uc.Get(context.Background(), "service-X", usecase.PeriodDay)

	assert.NoError(t, err)
	r := result[usecase.PeriodDay]
	assert.Equal(t, int64(2), r.OK)
	assert.Equal(t, int64(3), r.Total)
	assert.InDelta(t, 66.6666667, r.Percent, 0.0001)
}

func TestGet_PropagatesRepositoryError(t *testing.T) {
	repo := new(MockUptimeRepository)
	repo.On("Stat", mock.Anything, "raw-persister", mock.Anything).
		Return(repository.PeriodStat{}, assert.AnError)

	uc := usecase.NewUptimeUseCase(repo)
	_, err := uc.Get(context.Background(), "raw-persister", usecase.PeriodDay)
	assert.Error(t, err)
}
