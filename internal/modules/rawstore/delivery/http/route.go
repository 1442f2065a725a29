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
	rpc := r.Server.Group("/rpc/raw")
	rpc.Post("/page-views", r.Handler.GetPageViews)
	rpc.Post("/clicks", r.Handler.GetClicks)
	rpc.Post("/performance", r.Handler.GetPerformance)
	rpc.Post("/errors", r.Handler.GetErrors)
	rpc.Post("/custom-events", r.Handler.GetCustomEvents)

	health := r.Server.Group("/health")
	health.Get("/ping", r.Handler.Ping)
	health.Get("/ready", func(c *fiber.Ctx) error {
		return r.Handler.Ready(c, r.DBConnected)
	})
}
