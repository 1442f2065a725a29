package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"voyago/core-api/internal/infrastructure/config"
	server "voyago/core-api/internal/infrastructure/http"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/events/entity"
	deliveryhttp "voyago/core-api/internal/modules/ingestion/delivery/http"
	"voyago/core-api/internal/modules/ingestion/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublishPageViewUseCase struct{ mock.Mock }

func (m *MockPublishPageViewUseCase) Execute(ctx context.Context, e *entity.PageView) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func setupIngestionApp(t *testing.T, pubPageView usecase.PublishPageViewUseCase) *fiber.App {
	t.Helper()
	h := deliveryhttp.NewHandler(logger.NewNoOpLogger(), deliveryhttp.HandlerUseCases{
		PublishPageView: pubPageView,
	})

	srv := server.NewServer(&config.Config{App: config.AppConfig{Name: "test"}}, logger.NewNoOpLogger())
	srv.App.Post("/page-views", h.PageViews)
	return srv.App
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	respBody, _ := io.ReadAll(resp.Body)
	rec.Body = bytes.NewBuffer(respBody)
	return rec
}

// Scenario 1 (spec §8): a well-formed page view is accepted.
func TestPageViews_HappyPathReturns202(t *testing.T) {
	mockUc := new(MockPublishPageViewUseCase)
	mockUc.On("Execute", mock.Anything, mock.MatchedBy(func(e *entity.PageView) bool {
		return e.Page == "/home" && e.UserID == "u1" && e.Timestamp == 1700000000000
	})).Return(nil)

	app := setupIngestionApp(t, mockUc)
	resp := postJSON(t, app, "/page-views", map[string]any{
		"page":      "/home",
		"user_id":   "u1",
		"timestamp": 1700000000000,
	})

	assert.Equal(t, fiber.StatusAccepted, resp.Code)
	mockUc.AssertExpectations(t)
}

// Scenario 2 (spec §8): a missing page field is rejected with the exact
// error shape the usecase's Validate() call produces.
func TestPageViews_MissingPageReturns400WithValidationDetails(t *testing.T) {
	mockUc := new(MockPublishPageViewUseCase)
	mockUc.On("Execute", mock.Anything, mock.Anything).Return(
		(&entity.PageView{UserID: "u1"}).Validate(),
	)

	app := setupIngestionApp(t, mockUc)
	resp := postJSON(t, app, "/page-views", map[string]any{
		"user_id":   "u1",
		"timestamp": 0,
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.Code)
	var decoded struct {
		ErrorCode string         `json:"error_code"`
		Message   string         `json:"message"`
		Errors    map[string]any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	assert.Equal(t, entity.CodeInvalidPageView, decoded.ErrorCode)
	assert.Equal(t, "page", decoded.Errors["field"])
	assert.Equal(t, "required", decoded.Errors["reason"])
}

func TestPageViews_MalformedJSONReturns400(t *testing.T) {
	mockUc := new(MockPublishPageViewUseCase)
	app := setupIngestionApp(t, mockUc)

	req := httptest.NewRequest("POST", "/page-views", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockUc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
