package http

import (
	"voyago/core-api/internal/modules/ingestion/usecase"

	"github.com/gofiber/fiber/v2"
)

var aggregationKinds = map[string]bool{
	"page-views":    true,
	"clicks":        true,
	"performance":   true,
	"errors":        true,
	"custom-events": true,
}

type ProxyHandler struct {
	Aggregation usecase.AggregationQueryUseCase
	Uptime      usecase.UptimeQueryUseCase
}

func NewProxyHandler(agg usecase.AggregationQueryUseCase, up usecase.UptimeQueryUseCase) *ProxyHandler {
	return &ProxyHandler{Aggregation: agg, Uptime: up}
}

func (p *ProxyHandler) Watermark(c *fiber.Ctx) error {
	result, err := p.Aggregation.Watermark(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (p *ProxyHandler) AggregationQuery(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !aggregationKinds[kind] {
		return fiber.NewError(fiber.StatusNotFound, "unknown aggregation kind")
	}
	result, err := p.Aggregation.Query(c.UserContext(), kind, c.Body())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (p *ProxyHandler) Uptime(c *fiber.Ctx) error {
	service := c.Query("service")
	period := c.Query("period")
	if period == "" {
		period = c.Params("period")
	}
	result, err := p.Uptime.Uptime(c.UserContext(), service, period)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
