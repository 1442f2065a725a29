/*
|------------------------------------------------------------------------------------
| HTTP HANDLER ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| "Single Log Rule" / "Zero Post-Entry Logging" discipline: one anchor log
| per request, then hand over to
| the usecase and bubble whatever it returns to the global error handler.
|------------------------------------------------------------------------------------
*/
package http

import (
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/ingestion/usecase"

	"github.com/gofiber/fiber/v2"
)

type HandlerUseCases struct {
	PublishPageView   usecase.PublishPageViewUseCase
	PublishClick      usecase.PublishClickUseCase
	PublishPerf       usecase.PublishPerformanceUseCase
	PublishErrorEvent usecase.PublishErrorEventUseCase
	PublishCustom     usecase.PublishCustomEventUseCase
}

type Handler struct {
	Log logger.Logger
	Uc  HandlerUseCases
}

func NewHandler(log logger.Logger, uc HandlerUseCases) *Handler {
	return &Handler{Log: log.WithField("component", "handler"), Uc: uc}
}

func (h *Handler) anchor(c *fiber.Ctx, name string) logger.Logger {
	return h.Log.WithContext(c.UserContext()).WithField("method", name)
}

func (h *Handler) PageViews(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.anchor(c, "PageViews")

	e := new(entity.PageView)
	if err := c.BodyParser(e); err != nil {
		return entity.NewMalformedJSON(entity.CodeInvalidPageView)
	}

	log.WithField("business_key", map[string]any{"page": e.Page}).Info("request received")

	if err := h.Uc.PublishPageView.Execute(ctx, e); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) Clicks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.anchor(c, "Clicks")

	e := new(entity.Click)
	if err := c.BodyParser(e); err != nil {
		return entity.NewMalformedJSON(entity.CodeInvalidClickEvent)
	}

	log.WithField("business_key", map[string]any{"page": e.Page, "element_id": e.ElementID}).Info("request received")

	if err := h.Uc.PublishClick.Execute(ctx, e); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) Performance(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.anchor(c, "Performance")

	e := new(entity.Performance)
	if err := c.BodyParser(e); err != nil {
		return entity.NewMalformedJSON(entity.CodeInvalidPerformance)
	}

	log.WithField("business_key", map[string]any{"page": e.Page}).Info("request received")

	if err := h.Uc.PublishPerf.Execute(ctx, e); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) Errors(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.anchor(c, "Errors")

	e := new(entity.ErrorEvent)
	if err := c.BodyParser(e); err != nil {
		return entity.NewMalformedJSON(entity.CodeInvalidErrorEvent)
	}

	log.WithField("business_key", map[string]any{"page": e.Page, "error_type": e.ErrorType}).Info("request received")

	if err := h.Uc.PublishErrorEvent.Execute(ctx, e); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) CustomEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.anchor(c, "CustomEvents")

	e := new(entity.CustomEvent)
	if err := c.BodyParser(e); err != nil {
		return entity.NewMalformedJSON(entity.CodeInvalidCustomEvent)
	}

	log.WithField("business_key", map[string]any{"name": e.Name}).Info("request received")

	if err := h.Uc.PublishCustom.Execute(ctx, e); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// Ping exposes /health/ping — always 200 while the process is up.
func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "ingestion-gateway",
	})
}

// Ready exposes /health/ready. The gateway has no database of its own; its
// readiness is keyed on whether the broker publisher is currently
// connected, since that is the only dependency the gateway cannot serve
// traffic without (spec.md only defines readiness in terms of
// "database_connected" for E/G; the field here carries the broker state).
func (h *Handler) Ready(c *fiber.Ctx, brokerConnected func() bool) error {
	connected := brokerConnected()
	status := fiber.StatusOK
	if !connected {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"status":             readyStatus(connected),
		"database_connected": connected,
	})
}

func readyStatus(ok bool) string {
	if ok {
		return "ready"
	}
	return "not_ready"
}
