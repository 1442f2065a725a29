package usecase_test

import (
	"context"
	"testing"

	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockLogger struct{ mock.Mock }

func (m *MockLogger) WithContext(ctx context.Context) logger.Logger {
	args := m.Called(ctx)
	return args.Get(0).(logger.Logger)
}
func (m *MockLogger) WithField(key string, value any) logger.Logger {
	args := m.Called(key, value)
	return args.Get(0).(logger.Logger)
}
func (m *MockLogger) WithFields(fields map[string]any) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}
func (m *MockLogger) Debug(message string) { m.Called(message) }
func (m *MockLogger) Info(message string)  { m.Called(message) }
func (m *MockLogger) Warn(message string)  { m.Called(message) }
func (m *MockLogger) Error(message string) { m.Called(message) }

type MockSpan struct{ mock.Mock }

func (m *MockSpan) SetOperationName(name string) { m.Called(name) }
func (m *MockSpan) Finish()                      { m.Called() }
func (m *MockSpan) SetTag(key string, value any) { m.Called(key, value) }

type MockTracer struct{ mock.Mock }

func (m *MockTracer) StartSpan(ctx context.Context, name string) (tracer.Span, context.Context) {
	args := m.Called(ctx, name)
	return args.Get(0).(tracer.Span), args.Get(1).(context.Context)
}
func (m *MockTracer) UseGorm(db *gorm.DB) { m.Called(db) }
func (m *MockTracer) ExtractTraceInfo(ctx context.Context) (traceID, spanID string, ok bool) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Bool(2)
}
func (m *MockTracer) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockRawCommandRepo[T any] struct{ mock.Mock }

func (m *MockRawCommandRepo[T]) Insert(ctx context.Context, e *T) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func setupIngest(t *testing.T) (
	*MockLogger,
	*MockRawCommandRepo[entity.PageView],
	*MockRawCommandRepo[entity.ErrorEvent],
	usecase.IngestRawUseCase,
) {
	log := new(MockLogger)
	trc := new(MockTracer)
	span := new(MockSpan)
	pageView := new(MockRawCommandRepo[entity.PageView])
	errEvent := new(MockRawCommandRepo[entity.ErrorEvent])

	log.On("WithField", "action", "usecase:rawstore.ingest").Return(log)
	log.On("WithContext", mock.Anything).Return(log)
	log.On("WithField", "queue", mock.Anything).Return(log)
	log.On("WithField", "error", mock.Anything).Return(log)
	log.On("Warn", mock.Anything).Return()

	trc.On("StartSpan", mock.Anything, "usecase:rawstore.ingest").Return(span, context.Background())
	span.On("Finish").Return()
	span.On("SetTag", mock.Anything, mock.Anything).Return().Maybe()

	uc := usecase.NewIngestRawUseCase(log, trc, usecase.IngestRepositories{
		PageView:   pageView,
		ErrorEvent: errEvent,
	})
	return log, pageView, errEvent, uc
}

func TestProcess_PageView_InsertsParsedEvent(t *testing.T) {
	_, pageView, _, uc := setupIngest(t)
	pageView.On("Insert", mock.Anything, mock.MatchedBy(func(e *entity.PageView) bool {
		return e.Page == "/home" && e.ID != ""
	})).Return(nil)

	err := uc.Process(context.Background(), config.QueuePageViews, []byte(`{"page":"/home","timestamp":1700000000000}`))

	assert.NoError(t, err)
	pageView.AssertExpectations(t)
}

func TestProcess_MalformedJSONReturnsPersistanceError(t *testing.T) {
	_, pageView, _, uc := setupIngest(t)

	err := uc.Process(context.Background(), config.QueuePageViews, []byte(`not json`))

	assert.Error(t, err)
	pageView.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProcess_UnknownQueueReturnsInternalError(t *testing.T) {
	_, _, _, uc := setupIngest(t)

	err := uc.Process(context.Background(), "not-a-real-queue", []byte(`{}`))

	assert.Error(t, err)
}

func TestProcess_ErrorEvent_NormalizesOutOfRangeSeverityToError(t *testing.T) {
	_, _, errEvent, uc := setupIngest(t)
	errEvent.On("Insert", mock.Anything, mock.MatchedBy(func(e *entity.ErrorEvent) bool {
		return e.Severity == entity.SeverityError
	})).Return(nil)

	body := []byte(`{"page":"/checkout","error_type":"V","message":"boom","severity":99}`)
	err := uc.Process(context.Background(), config.QueueErrorEvent, body)

	assert.NoError(t, err)
	errEvent.AssertExpectations(t)
}

func TestProcess_RepositoryFailurePropagates(t *testing.T) {
	_, pageView, _, uc := setupIngest(t)
	pageView.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

	err := uc.Process(context.Background(), config.QueuePageViews, []byte(`{"page":"/home","timestamp":1}`))

	assert.Error(t, err)
}
