package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"voyago/core-api/internal/infrastructure/logger"
	deliveryhttp "voyago/core-api/internal/modules/monitor/delivery/http"
	"voyago/core-api/internal/modules/monitor/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUptimeUseCase struct{ mock.Mock }

func (m *MockUptimeUseCase) Get(ctx context.Context, serviceName string, period usecase.Period) (map[usecase.Period]usecase.UptimeResult, error) {
	args := m.Called(ctx, serviceName, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[usecase.Period]usecase.UptimeResult), args.Error(1)
}

func setupHandler(t *testing.T) (*MockUptimeUseCase, *fiber.App) {
	t.Helper()
	mockUc := new(MockUptimeUseCase)
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

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	return decoded
}

func doRequest(t *testing.T, app *fiber.App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	body, _ := io.ReadAll(resp.Body)
	rec.Body = bytes.NewBuffer(body)
	return rec
}

func TestUptime_MissingServiceParamReturns400(t *testing.T) {
	_, app := setupHandler(t)
	resp := doRequest(t, app, "/uptime")
	assert.Equal(t, fiber.StatusBadRequest, resp.Code)
}

func TestUptime_AllPeriodsWhenNoneSpecified(t *testing.T) {
	mockUc, app := setupHandler(t)
	mockUc.On("Get", mock.Anything, "raw-persister", usecase.Period("")).Return(map[usecase.Period]usecase.UptimeResult{
		usecase.PeriodDay: {OK: 9, Total: 10, Percent: 90},
	}, nil)

	resp := doRequest(t, app, "/uptime?service=raw-persister")

	assert.Equal(t, fiber.StatusOK, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, "raw-persister", body["service"])
	assert.Equal(t, "all", body["period"])
}

func TestUptime_SpecificPeriodFromPathParam(t *testing.T) {
	mockUc, app := setupHandler(t)
	mockUc.On("Get", mock.Anything, "raw-persister", usecase.PeriodWeek).Return(map[usecase.Period]usecase.UptimeResult{
		usecase.PeriodWeek: {OK: 5, Total: 5, Percent: 100},
	}, nil)

	resp := doRequest(t, app, "/uptime/week?service=raw-persister")

	assert.Equal(t, fiber.StatusOK, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, "week", body["period"])
}

func TestPing_ReturnsOK(t *testing.T) {
	_, app := setupHandler(t)
	resp := doRequest(t, app, "/health/ping")
	assert.Equal(t, fiber.StatusOK, resp.Code)
}

func TestReady_ReturnsServiceUnavailableWhenDBDisconnected(t *testing.T) {
	mockUc := new(MockUptimeUseCase)
	h := deliveryhttp.NewHandler(logger.NewNoOpLogger(), mockUc)
	app := fiber.New()
	routeConfig := deliveryhttp.RouteConfig{
		Server:      app,
		Handler:     h,
		DBConnected: func() bool { return false },
	}
	routeConfig.Setup()

	resp := doRequest(t, app, "/health/ready")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["database_connected"])
}
