package rawstore

import (
	"context"
	"voyago/core-api/internal/infrastructure/broker"
	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	httpdelivery "voyago/core-api/internal/modules/rawstore/delivery/http"
	"voyago/core-api/internal/modules/rawstore/repository/command"
	"voyago/core-api/internal/modules/rawstore/repository/query"
	"voyago/core-api/internal/modules/rawstore/usecase"

	"github.com/gofiber/fiber/v2"
)

type ModuleConfig struct {
	Config *config.Config
	Server *fiber.App
	DB     database.Database
	Log    logger.Logger
	Tracer tracer.Tracer
}

// RegisterModule wires E (consumer) and F (its RPC read surface) against
// one shared database connection.
func RegisterModule(cfg ModuleConfig) *broker.Consumer {
	ucLogger := cfg.Log.WithField("component", "usecase")
	hdlrLogger := cfg.Log.WithField("component", "handler")

	ingestRepos := usecase.IngestRepositories{
		PageView:    command.NewPageViewRepository(cfg.DB),
		Click:       command.NewClickRepository(cfg.DB),
		Performance: command.NewPerformanceRepository(cfg.DB),
		ErrorEvent:  command.NewErrorEventRepository(cfg.DB),
		CustomEvent: command.NewCustomEventRepository(cfg.DB),
	}
	ingestUc := usecase.NewIngestRawUseCase(ucLogger, cfg.Tracer, ingestRepos)

	queryRepos := usecase.QueryRepositories{
		PageView:    query.NewPageViewRepository(cfg.DB),
		Click:       query.NewClickRepository(cfg.DB),
		Performance: query.NewPerformanceRepository(cfg.DB),
		ErrorEvent:  query.NewErrorEventRepository(cfg.DB),
		CustomEvent: query.NewCustomEventRepository(cfg.DB),
	}
	queryUc := usecase.NewRawQueryUseCase(queryRepos)

	h := httpdelivery.NewHandler(hdlrLogger, queryUc)
	routeConfig := httpdelivery.RouteConfig{
		Server:      cfg.Server,
		Config:      cfg.Config,
		Handler:     h,
		DBConnected: func() bool { return pingDatabase(cfg.DB) },
	}
	routeConfig.Setup()

	consumer := broker.NewConsumer(&cfg.Config.Broker, cfg.Log, func(ctx context.Context, queue string, body []byte) error {
		return ingestUc.Process(ctx, queue, body)
	})
	return consumer
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
