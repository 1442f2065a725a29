/*
|------------------------------------------------------------------------------------
| RPC HANDLER ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| F is internal HTTP+JSON RPC (no hand-authored protobuf stubs — see
| DESIGN.md). Wire shape: seconds-since-epoch integers for time_range,
| matching spec §4.E exactly, as opposed to H's protobuf Timestamps.
|------------------------------------------------------------------------------------
*/
package http

import (
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/rawstore/repository"
	"voyago/core-api/internal/modules/rawstore/usecase"

	"github.com/gofiber/fiber/v2"
)

type timeRangeDTO struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type paginationDTO struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type getPageViewsRequest struct {
	TimeRange    timeRangeDTO  `json:"time_range"`
	PageFilter   string        `json:"page_filter"`
	UserIDFilter string        `json:"user_id_filter"`
	Pagination   paginationDTO `json:"pagination"`
}

type getClicksRequest struct {
	TimeRange       timeRangeDTO  `json:"time_range"`
	PageFilter      string        `json:"page_filter"`
	ElementIDFilter string        `json:"element_id_filter"`
	UserIDFilter    string        `json:"user_id_filter"`
	Pagination      paginationDTO `json:"pagination"`
}

type getPerformanceRequest struct {
	TimeRange    timeRangeDTO  `json:"time_range"`
	PageFilter   string        `json:"page_filter"`
	UserIDFilter string        `json:"user_id_filter"`
	Pagination   paginationDTO `json:"pagination"`
}

type getErrorsRequest struct {
	TimeRange       timeRangeDTO  `json:"time_range"`
	PageFilter      string        `json:"page_filter"`
	ErrorTypeFilter string        `json:"error_type_filter"`
	SeverityFilter  int           `json:"severity_filter"`
	UserIDFilter    string        `json:"user_id_filter"`
	Pagination      paginationDTO `json:"pagination"`
}

type getCustomEventsRequest struct {
	TimeRange    timeRangeDTO  `json:"time_range"`
	NameFilter   string        `json:"name_filter"`
	UserIDFilter string        `json:"user_id_filter"`
	Pagination   paginationDTO `json:"pagination"`
}

type Handler struct {
	Log logger.Logger
	Uc  usecase.RawQueryUseCase
}

func NewHandler(log logger.Logger, uc usecase.RawQueryUseCase) *Handler {
	return &Handler{Log: log.WithField("component", "rpc.raw"), Uc: uc}
}

func (h *Handler) GetPageViews(c *fiber.Ctx) error {
	req := new(getPageViewsRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	items, total, err := h.Uc.GetPageViews(c.UserContext(), repository.PageViewFilter{
		TimeRange:    repository.TimeRange{Start: req.TimeRange.Start, End: req.TimeRange.End},
		PageFilter:   req.PageFilter,
		UserIDFilter: req.UserIDFilter,
		Pagination:   repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items, "total_count": total})
}

func (h *Handler) GetClicks(c *fiber.Ctx) error {
	req := new(getClicksRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	items, total, err := h.Uc.GetClicks(c.UserContext(), repository.ClickFilter{
		TimeRange:       repository.TimeRange{Start: req.TimeRange.Start, End: req.TimeRange.End},
		PageFilter:      req.PageFilter,
		ElementIDFilter: req.ElementIDFilter,
		UserIDFilter:    req.UserIDFilter,
		Pagination:      repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items, "total_count": total})
}

func (h *Handler) GetPerformance(c *fiber.Ctx) error {
	req := new(getPerformanceRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	items, total, err := h.Uc.GetPerformance(c.UserContext(), repository.PerformanceFilter{
		TimeRange:    repository.TimeRange{Start: req.TimeRange.Start, End: req.TimeRange.End},
		PageFilter:   req.PageFilter,
		UserIDFilter: req.UserIDFilter,
		Pagination:   repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items, "total_count": total})
}

func (h *Handler) GetErrors(c *fiber.Ctx) error {
	req := new(getErrorsRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	items, total, err := h.Uc.GetErrors(c.UserContext(), repository.ErrorFilter{
		TimeRange:       repository.TimeRange{Start: req.TimeRange.Start, End: req.TimeRange.End},
		PageFilter:      req.PageFilter,
		ErrorTypeFilter: req.ErrorTypeFilter,
		SeverityFilter:  req.SeverityFilter,
		UserIDFilter:    req.UserIDFilter,
		Pagination:      repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items, "total_count": total})
}

func (h *Handler) GetCustomEvents(c *fiber.Ctx) error {
	req := new(getCustomEventsRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	items, total, err := h.Uc.GetCustomEvents(c.UserContext(), repository.CustomEventFilter{
		TimeRange:    repository.TimeRange{Start: req.TimeRange.Start, End: req.TimeRange.End},
		NameFilter:   req.NameFilter,
		UserIDFilter: req.UserIDFilter,
		Pagination:   repository.Pagination{Limit: req.Pagination.Limit, Offset: req.Pagination.Offset},
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items, "total_count": total})
}

// Ping/Ready implement the persister's own liveness/readiness surface
// (spec §4.I probes E through these same two endpoints as D and G).
func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "service": "raw-persister"})
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
