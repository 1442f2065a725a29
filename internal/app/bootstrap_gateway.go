package app

import (
	"time"
	"voyago/core-api/internal/infrastructure/broker"
	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/middleware"
	"voyago/core-api/internal/infrastructure/telemetry/metrics"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/ingestion"

	"github.com/gofiber/fiber/v2"
)

// BootstrapGatewayConfig wires D — the ingestion gateway. It has no
// database of its own: its state is a broker
// publisher connection and (optionally) a Redis cache fronting its query
// proxy to H and I.
type BootstrapGatewayConfig struct {
	App     *fiber.App
	Config  *config.Config
	Log     logger.Logger
	Tracer  tracer.Tracer
	Metrics metrics.Metrics

	publisher *broker.Publisher
	cache     database.CacheDatabase
}

func (b *BootstrapGatewayConfig) Run() {
	b.setupMiddleware()

	b.publisher = broker.NewPublisher(&b.Config.Broker, b.Log)
	b.cache = database.NewRedisCache(&b.Config.Redis, b.Log)

	ingestion.RegisterHttpModule(ingestion.HttpModuleConfig{
		Config:    b.Config,
		Server:    b.App,
		Cache:     b.cache,
		Log:       b.Log,
		Tracer:    b.Tracer,
		Publisher: b.publisher,
	})

	b.setupHealthRoute()
}

func (b *BootstrapGatewayConfig) Stop() {
	if b.publisher != nil {
		if err := b.publisher.Close(); err != nil {
			b.Log.WithField("error", err.Error()).Error("failed to close broker publisher")
		}
	}
	if b.cache != nil {
		if err := b.cache.Close(); err != nil {
			b.Log.WithField("error", err.Error()).Error("failed to close redis cache")
		}
	}
}

func (b *BootstrapGatewayConfig) setupMiddleware() {
	t := middleware.NewTelemetrist(b.Log, b.Tracer, b.Metrics)

	b.App.Use(middleware.RequestID())
	b.App.Use(t.HandleMetrics())
	b.App.Use(t.HandleTrace())
	b.App.Use(t.HandleLog())
}

func (b *BootstrapGatewayConfig) setupHealthRoute() {
	h := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "UP",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
	b.App.Get("/", h)
}
