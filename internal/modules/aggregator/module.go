package aggregator

import (
	"time"

	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	"voyago/core-api/internal/modules/aggregator/client"
	httpdelivery "voyago/core-api/internal/modules/aggregator/delivery/http"
	"voyago/core-api/internal/modules/aggregator/repository/command"
	"voyago/core-api/internal/modules/aggregator/repository/query"
	"voyago/core-api/internal/modules/aggregator/usecase"

	"github.com/gofiber/fiber/v2"
)

type ModuleConfig struct {
	Config *config.Config
	Server *fiber.App
	DB     database.Database
	Log    logger.Logger
	Tracer tracer.Tracer
}

// RegisterModule wires G (the tick scheduler) and H (its RPC read surface)
// against one shared database connection, and returns the scheduler for
// the bootstrap layer to run and stop alongside the HTTP server.
func RegisterModule(cfg ModuleConfig) *Scheduler {
	ucLogger := cfg.Log.WithField("component", "usecase")
	hdlrLogger := cfg.Log.WithField("component", "handler")

	recompute := cfg.Config.Aggregation.RecomputeMode

	watermarkRepo := command.NewWatermarkRepository(cfg.DB)
	commandRepos := usecase.CommandRepositories{
		PageView:    command.NewPageViewAggRepository(cfg.DB, recompute),
		Click:       command.NewClickAggRepository(cfg.DB, recompute),
		Performance: command.NewPerformanceAggRepository(cfg.DB, recompute),
		ErrorEvent:  command.NewErrorAggRepository(cfg.DB, recompute),
		CustomEvent: command.NewCustomEventAggRepository(cfg.DB, recompute),
		Watermark:   watermarkRepo,
	}

	rawClient := client.NewRawClient(&cfg.Config.RPC)
	bucketMinutes := cfg.Config.Aggregation.BucketMinutes
	if bucketMinutes <= 0 {
		bucketMinutes = 5
	}
	tickUc := usecase.NewTickUseCase(ucLogger, cfg.Tracer, rawClient, commandRepos, bucketMinutes)

	interval := time.Duration(cfg.Config.Aggregation.IntervalSeconds) * time.Second
	scheduler := NewScheduler(cfg.Log, tickUc, interval)

	queryRepo := query.NewQueryRepository(cfg.DB)
	queryUc := usecase.NewQueryUseCase(ucLogger, queryRepo, watermarkRepo)

	h := httpdelivery.NewHandler(hdlrLogger, queryUc)
	routeConfig := httpdelivery.RouteConfig{
		Server:      cfg.Server,
		Config:      cfg.Config,
		Handler:     h,
		DBConnected: func() bool { return pingDatabase(cfg.DB) },
	}
	routeConfig.Setup()

	return scheduler
}

// pingDatabase reports whether the connection pool can currently reach
// Postgres, used to answer the /health/ready probe (spec §4.I readiness
// contract: `{"database_connected": bool}`).
func pingDatabase(db database.Database) bool {
	sqlDB, err := db.GetDB().DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
