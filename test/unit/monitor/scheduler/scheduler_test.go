package scheduler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/monitor/entity"
	"voyago/core-api/internal/modules/monitor/prober"
	"voyago/core-api/internal/modules/monitor/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// noopLogger is a minimal logger.Logger stub — the scheduler only ever
// calls WithField and the leveled methods, never asserts on them.
type noopLogger struct{}

func (n noopLogger) WithContext(ctx context.Context) logger.Logger   { return n }
func (n noopLogger) WithField(key string, value any) logger.Logger  { return n }
func (n noopLogger) WithFields(fields map[string]any) logger.Logger { return n }
func (n noopLogger) Debug(message string)                           {}
func (n noopLogger) Info(message string)                            {}
func (n noopLogger) Warn(message string)                            {}
func (n noopLogger) Error(message string)                           {}

type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Append(ctx context.Context, log entity.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func splitHostPort(t *testing.T, rawURL string) (string, int) {
	u, err := url.Parse(rawURL)
	assert.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	assert.NoError(t, err)
	return u.Hostname(), port
}

func TestRun_PingsDueTargetAndRecordsOKResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"database_connected":true}`))
	}))
	defer srv.Close()
	host, port := splitHostPort(t, srv.URL)

	logs := new(MockLogRepository)
	logs.On("Append", mock.Anything, mock.MatchedBy(func(l entity.Log) bool {
		return l.ServiceName == "raw-persister" && l.LogMessage == string(entity.ResultOK)
	})).Return(nil)

	p := prober.New(time.Second)
	target := config.MonitorTarget{Name: "raw-persister", Host: host, Port: port}
	// pingInterval short enough to fire at least once within the test window.
	// Both probes are due on the first tick (no probe has run yet), so the
	// server also answers readiness with an OK body.
	sched := scheduler.New(noopLogger{}, p, logs, []config.MonitorTarget{target}, 900*time.Millisecond, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sched.Run(ctx)

	logs.AssertCalled(t, "Append", mock.Anything, mock.MatchedBy(func(l entity.Log) bool {
		return l.ServiceName == "raw-persister" && l.LogMessage == string(entity.ResultOK)
	}))
}

func TestRun_RecordsFailWhenTargetUnreachable(t *testing.T) {
	logs := new(MockLogRepository)
	logs.On("Append", mock.Anything, mock.MatchedBy(func(l entity.Log) bool {
		return l.LogMessage == string(entity.ResultFail)
	})).Return(nil)

	p := prober.New(100 * time.Millisecond)
	target := config.MonitorTarget{Name: "down-service", Host: "127.0.0.1", Port: 1}
	sched := scheduler.New(noopLogger{}, p, logs, []config.MonitorTarget{target}, 900*time.Millisecond, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sched.Run(ctx)

	logs.AssertCalled(t, "Append", mock.Anything, mock.MatchedBy(func(l entity.Log) bool {
		return l.LogMessage == string(entity.ResultFail)
	}))
}

func TestRun_StopsPromptlyOnContextCancellation(t *testing.T) {
	logs := new(MockLogRepository)
	p := prober.New(time.Second)
	sched := scheduler.New(noopLogger{}, p, logs, nil, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
