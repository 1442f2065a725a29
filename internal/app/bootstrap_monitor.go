package app

import (
	"context"
	"time"
	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/middleware"
	"voyago/core-api/internal/infrastructure/telemetry/metrics"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/monitor"
	monscheduler "voyago/core-api/internal/modules/monitor/scheduler"

	"github.com/gofiber/fiber/v2"
)

// BootstrapMonitorConfig wires I: the D/E/G probe scheduler alongside the
// uptime RPC read surface on a single Postgres connection.
type BootstrapMonitorConfig struct {
	App     *fiber.App
	Config  *config.Config
	Log     logger.Logger
	Tracer  tracer.Tracer
	Metrics metrics.Metrics

	db        database.Database
	scheduler *monscheduler.Scheduler
	cancel    context.CancelFunc
}

func (b *BootstrapMonitorConfig) Run() {
	b.setupMiddleware()

	b.db = database.NewDatabase(&b.Config.Database, b.Log, b.Tracer)

	b.scheduler = monitor.RegisterModule(monitor.ModuleConfig{
		Config: b.Config,
		Server: b.App,
		DB:     b.db,
		Log:    b.Log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	go b.scheduler.Run(ctx)

	b.setupHealthRoute()
}

func (b *BootstrapMonitorConfig) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			b.Log.WithField("error", err.Error()).Error("failed to close database connection")
		}
	}
}

func (b *BootstrapMonitorConfig) setupMiddleware() {
	t := middleware.NewTelemetrist(b.Log, b.Tracer, b.Metrics)
	b.App.Use(middleware.RequestID())
	b.App.Use(t.HandleMetrics())
	b.App.Use(t.HandleTrace())
	b.App.Use(t.HandleLog())
}

func (b *BootstrapMonitorConfig) setupHealthRoute() {
	h := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "UP",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
	b.App.Get("/", h)
}
