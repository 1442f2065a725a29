package http

import (
	"voyago/core-api/internal/infrastructure/config"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	Config      *config.Config
	Server      *fiber.App
	Handler     *Handler
	DBConnected func() bool
}

func (r *RouteConfig) Setup() {
	rpc := r.Server.Group("/rpc/aggregation")
	rpc.Get("/watermark", r.Handler.GetWatermark)
	rpc.Post("/page-views", r.Handler.GetPageViewsAgg)
	rpc.Post("/clicks", r.Handler.GetClicksAgg)
	rpc.Post("/performance", r.Handler.GetPerformanceAgg)
	rpc.Post("/errors", r.Handler.GetErrorsAgg)
	rpc.Post("/custom-events", r.Handler.GetCustomEventsAgg)

	health := r.Server.Group("/health")
	health.Get("/ping", r.Handler.Ping)
	health.Get("/ready", func(c *fiber.Ctx) error {
		return r.Handler.Ready(c, r.DBConnected)
	})
}
