package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/core-api/internal/infrastructure/logger"
	deliveryhttp "voyago/core-api/internal/modules/aggregator/delivery/http"
	aggentity "voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueryUseCase struct{ mock.Mock }

func (m *MockQueryUseCase) GetPageViewsAgg(ctx context.Context, f repository.PageViewAggFilter) ([]aggentity.PageViewAgg, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]aggentity.PageViewAgg), args.Error(1)
}
func (m *MockQueryUseCase) GetClicksAgg(ctx context.Context, f repository.ClickAggFilter) ([]aggentity.ClickAgg, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]aggentity.ClickAgg), args.Error(1)
}
func (m *MockQueryUseCase) GetPerformanceAgg(ctx context.Context, f repository.PerformanceAggFilter) ([]aggentity.PerformanceAgg, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]aggentity.PerformanceAgg), args.Error(1)
}
func (m *MockQueryUseCase) GetErrorsAgg(ctx context.Context, f repository.ErrorAggFilter) ([]aggentity.ErrorAgg, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]aggentity.ErrorAgg), args.Error(1)
}
func (m *MockQueryUseCase) GetCustomEventsAgg(ctx context.Context, f repository.CustomEventAggFilter) ([]aggentity.CustomEventAgg, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]aggentity.CustomEventAgg), args.Error(1)
}
func (m *MockQueryUseCase) GetWatermark(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func setupAggHandler(t *testing.T) (*MockQueryUseCase, *fiber.App) {
	t.Helper()
	mockUc := new(MockQueryUseCase)
	h := deliveryhttp.NewHandler(logger.NewNoOpLogger(), mockUc)
	app := fiber.New()
	routeConfig := deliveryhttp.RouteConfig{
		Server:      app,
		Handler:     h,
		DBConnected: func() bool { return true },
	}
	routeConfig.Setup()
	return mockUc, app
}

func doJSONRequest(t *testing.T, app *fiber.App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	respBody, _ := io.ReadAll(resp.Body)
	rec.Body = bytes.NewBuffer(respBody)
	return rec
}

func TestGetPageViewsAgg_MissingProjectIDReturnsError(t *testing.T) {
	_, app := setupAggHandler(t)
	resp := doJSONRequest(t, app, "POST", "/rpc/aggregation/page-views", map[string]any{
		"time_range": map[string]any{"from": nil, "to": nil},
	})
	assert.NotEqual(t, fiber.StatusOK, resp.Code)
}

func TestGetPageViewsAgg_Success(t *testing.T) {
	mockUc, app := setupAggHandler(t)
	mockUc.On("GetPageViewsAgg", mock.Anything, mock.Anything).Return([]aggentity.PageViewAgg{
		{ProjectID: "p1", Page: "/home", ViewsCount: 5},
	}, nil)

	resp := doJSONRequest(t, app, "POST", "/rpc/aggregation/page-views", map[string]any{
		"project_id": "p1",
		"time_range": map[string]any{"from": nil, "to": nil},
	})

	assert.Equal(t, fiber.StatusOK, resp.Code)
	var decoded struct {
		Items []aggentity.PageViewAgg `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	assert.Len(t, decoded.Items, 1)
	assert.Equal(t, int64(5), decoded.Items[0].ViewsCount)
}

func TestGetWatermark_RoundTripsThroughProtobufTimestamp(t *testing.T) {
	mockUc, app := setupAggHandler(t)
	want := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	mockUc.On("GetWatermark", mock.Anything).Return(want, nil)

	resp := doJSONRequest(t, app, "GET", "/rpc/aggregation/watermark", nil)

	assert.Equal(t, fiber.StatusOK, resp.Code)
	var decoded struct {
		LastAggregatedAt string `json:"last_aggregated_at"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	parsed, err := time.Parse(time.RFC3339, decoded.LastAggregatedAt)
	require.NoError(t, err)
	assert.True(t, want.Equal(parsed))
}

func TestPing_ReturnsOK(t *testing.T) {
	_, app := setupAggHandler(t)
	resp := doJSONRequest(t, app, "GET", "/health/ping", nil)
	assert.Equal(t, fiber.StatusOK, resp.Code)
}
