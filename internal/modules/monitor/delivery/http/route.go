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
	r.Server.Get("/uptime", r.Handler.Uptime)
	r.Server.Get("/uptime/:period", r.Handler.Uptime)

	health := r.Server.Group("/health")
	health.Get("/ping", r.Handler.Ping)
	health.Get("/ready", func(c *fiber.Ctx) error {
		return r.Handler.Ready(c, r.DBConnected)
	})
}
