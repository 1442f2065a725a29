package http

import (
	"encoding/json"

	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/aggregator/repository"
	"voyago/core-api/internal/modules/aggregator/usecase"
	"voyago/core-api/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type timeRangeDTO struct {
	From json.RawMessage `json:"from"`
	To   json.RawMessage `json:"to"`
}

type paginationDTO struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type getPageViewsAggRequest struct {
	ProjectID  string        `json:"project_id"`
	TimeRange  timeRangeDTO  `json:"time_range"`
	Page       string        `json:"page"`
	Pagination paginationDTO `json:"pagination"`
}

type getClicksAggRequest struct {
	ProjectID  string        `json:"project_id"`
	TimeRange  timeRangeDTO  `json:"time_range"`
	Page       string        `json:"page"`
	ElementID  string        `json:"element_id"`
	Pagination paginationDTO `json:"pagination"`
}

type getPerformanceAggRequest struct {
	ProjectID  string        `json:"project_id"`
	TimeRange  timeRangeDTO  `json:"time_range"`
	Page       string        `json:"page"`
	Pagination paginationDTO `json:"pagination"`
}

type getErrorsAggRequest struct {
	ProjectID  string        `json:"project_id"`
	TimeRange  timeRangeDTO  `json:"time_range"`
	Page       string        `json:"page"`
	ErrorType  string        `json:"error_type"`
	Pagination paginationDTO `json:"pagination"`
}

type getCustomEventsAggRequest struct {
	ProjectID  string        `json:"project_id"`
	TimeRange  timeRangeDTO  `json:"time_range"`
	EventName  string        `json:"event_name"`
	Page       string        `json:"page"`
	Pagination paginationDTO `json:"pagination"`
}

type Handler struct {
	Log logger.Logger
	Uc  usecase.QueryUseCase
}

func NewHandler(log logger.Logger, uc usecase.QueryUseCase) *Handler {
	return &Handler{Log: log.WithField("component", "rpc.aggregate"), Uc: uc}
}

func parseTimeRange(dto timeRangeDTO) (repository.TimeRange, error) {
	from, err := unmarshalTimestamp(dto.From)
	if err != nil {
		return repository.TimeRange{}, apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed time_range.from", err)
	}
	to, err := unmarshalTimestamp(dto.To)
	if err != nil {
		return repository.TimeRange{}, apperror.NewPersistance(apperror.CodeMalformedRequest, "malformed time_range.to", err)
	}
	return repository.TimeRange{From: from, To: to}, nil
}

func requireProjectID(projectID string) error {
	if projectID == "" {
		return apperror.NewPersistance(apperror.CodeMalformedRequest, "project_id is required")
	}
	return nil
}

func (h *Handler) GetPageViewsAgg(c *fiber.Ctx) error {
	req := new(getPageViewsAggRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := requireProjectID(req.ProjectID); err != nil {
		return err
	}
	tr, err := parseTimeRange(req.TimeRange)
	if err != nil {
		return err
	}
	items, err := h.Uc.GetPageViewsAgg(c.UserContext(), repository.PageViewAggFilter{
		ProjectID:  req.ProjectID,
		TimeRange:  tr,
		Page:       req.Page,
		Pagination: repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *Handler) GetClicksAgg(c *fiber.Ctx) error {
	req := new(getClicksAggRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := requireProjectID(req.ProjectID); err != nil {
		return err
	}
	tr, err := parseTimeRange(req.TimeRange)
	if err != nil {
		return err
	}
	items, err := h.Uc.GetClicksAgg(c.UserContext(), repository.ClickAggFilter{
		ProjectID:  req.ProjectID,
		TimeRange:  tr,
		Page:       req.Page,
		ElementID:  req.ElementID,
		Pagination: repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *Handler) GetPerformanceAgg(c *fiber.Ctx) error {
	req := new(getPerformanceAggRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := requireProjectID(req.ProjectID); err != nil {
		return err
	}
	tr, err := parseTimeRange(req.TimeRange)
	if err != nil {
		return err
	}
	items, err := h.Uc.GetPerformanceAgg(c.UserContext(), repository.PerformanceAggFilter{
		ProjectID:  req.ProjectID,
		TimeRange:  tr,
		Page:       req.Page,
		Pagination: repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *Handler) GetErrorsAgg(c *fiber.Ctx) error {
	req := new(getErrorsAggRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := requireProjectID(req.ProjectID); err != nil {
		return err
	}
	tr, err := parseTimeRange(req.TimeRange)
	if err != nil {
		return err
	}
	items, err := h.Uc.GetErrorsAgg(c.UserContext(), repository.ErrorAggFilter{
		ProjectID:  req.ProjectID,
		TimeRange:  tr,
		Page:       req.Page,
		ErrorType:  req.ErrorType,
		Pagination: repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *Handler) GetCustomEventsAgg(c *fiber.Ctx) error {
	req := new(getCustomEventsAggRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := requireProjectID(req.ProjectID); err != nil {
		return err
	}
	tr, err := parseTimeRange(req.TimeRange)
	if err != nil {
		return err
	}
	items, err := h.Uc.GetCustomEventsAgg(c.UserContext(), repository.CustomEventAggFilter{
		ProjectID:  req.ProjectID,
		TimeRange:  tr,
		EventName:  req.EventName,
		Page:       req.Page,
		Pagination: repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *Handler) GetWatermark(c *fiber.Ctx) error {
	ts, err := h.Uc.GetWatermark(c.UserContext())
	if err != nil {
		return err
	}
	raw, err := marshalTimestamp(ts)
	if err != nil {
		return apperror.NewInternal(apperror.CodeInternalError, "failed to encode watermark", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"last_aggregated_at": raw})
}

// Ping/Ready implement the aggregator's own liveness/readiness surface
// (spec §4.I probes G through these same two endpoints as D and E).
func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "service": "aggregator"})
}

func (h *Handler) Ready(c *fiber.Ctx, dbConnected func() bool) error {
	connected := dbConnected()
	status := fiber.StatusOK
	readyStr := "ready"
	if !connected {
		status = fiber.StatusServiceUnavailable
		readyStr = "not_ready"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":             readyStr,
		"database_connected": connected,
	})
}
