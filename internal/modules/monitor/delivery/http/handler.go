/*
|------------------------------------------------------------------------------------
| RPC HANDLER ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| Response shapes are a direct port of
| original_source/monitoring-service/src/http_server.cpp's respond_with_uptime:
| `{service, period, periods: {day|week|month|year: {ok, total, percent}}}`,
| narrowed to one key when a specific period is requested.
|------------------------------------------------------------------------------------
*/
package http

import (
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/monitor/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Log logger.Logger
	Uc  usecase.UptimeUseCase
}

func NewHandler(log logger.Logger, uc usecase.UptimeUseCase) *Handler {
	return &Handler{Log: log.WithField("component", "handler"), Uc: uc}
}

func (h *Handler) Uptime(c *fiber.Ctx) error {
	serviceName := c.Query("service")
	if serviceName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing query param: service")
	}

	period := usecase.Period(c.Params("period"))
	if period == "" {
		period = usecase.Period(c.Query("period"))
	}

	results, err := h.Uc.Get(c.UserContext(), serviceName, period)
	if err != nil {
		return err
	}

	periods := fiber.Map{}
	for p, r := range results {
		periods[string(p)] = fiber.Map{"ok": r.OK, "total": r.Total, "percent": r.Percent}
	}

	periodLabel := "all"
	if period != "" {
		periodLabel = string(period)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"service": serviceName,
		"period":  periodLabel,
		"periods": periods,
	})
}

// Ping/Ready implement the monitor's own liveness/readiness surface
// (spec §4.I: the monitor exposes the same two endpoints it probes on
// D/E/G, so orchestration can supervise it identically).
func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "service": "monitoring-service"})
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
