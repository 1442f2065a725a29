package http

import (
	"voyago/core-api/internal/infrastructure/config"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	Config          *config.Config
	Server          *fiber.App
	Handler         *Handler
	Proxy           *ProxyHandler
	BrokerConnected func() bool
}

// Setup registers the five ingestion endpoints as top-level routes (spec
// §4.D: each kind owns its own path, there is no shared "/events" prefix),
// plus the read-only aggregation and
// uptime query-proxy surface.
func (r *RouteConfig) Setup() {
	r.Server.Post("/page-views", r.Handler.PageViews)
	r.Server.Post("/clicks", r.Handler.Clicks)
	r.Server.Post("/performance", r.Handler.Performance)
	r.Server.Post("/errors", r.Handler.Errors)
	r.Server.Post("/custom-events", r.Handler.CustomEvents)

	health := r.Server.Group("/health")
	health.Get("/ping", r.Handler.Ping)
	health.Get("/ready", func(c *fiber.Ctx) error {
		return r.Handler.Ready(c, r.BrokerConnected)
	})

	agg := r.Server.Group("/aggregation")
	agg.Get("/watermark", r.Proxy.Watermark)
	agg.Post("/:kind", r.Proxy.AggregationQuery)

	r.Server.Get("/uptime", r.Proxy.Uptime)
	r.Server.Get("/uptime/:period", r.Proxy.Uptime)
}
