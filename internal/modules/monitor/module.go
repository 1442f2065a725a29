package monitor

import (
	"time"

	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	httpdelivery "voyago/core-api/internal/modules/monitor/delivery/http"
	"voyago/core-api/internal/modules/monitor/prober"
	"voyago/core-api/internal/modules/monitor/repository"
	"voyago/core-api/internal/modules/monitor/scheduler"
	"voyago/core-api/internal/modules/monitor/usecase"

	"github.com/gofiber/fiber/v2"
)

type ModuleConfig struct {
	Config *config.Config
	Server *fiber.App
	DB     database.Database
	Log    logger.Logger
}

// RegisterModule wires I: the probe scheduler over D/E/G plus the uptime
// HTTP read surface, both against one shared database connection.
func RegisterModule(cfg ModuleConfig) *scheduler.Scheduler {
	hdlrLogger := cfg.Log.WithField("component", "handler")

	logs := repository.NewLogRepository(cfg.DB)
	uptimeRepo := repository.NewUptimeRepository(cfg.DB)

	probeTimeout := time.Duration(cfg.Config.Monitor.ProbeTimeoutSeconds) * time.Second
	p := prober.New(probeTimeout)

	sched := scheduler.New(
		cfg.Log,
		p,
		logs,
		cfg.Config.Monitor.Targets,
		time.Duration(cfg.Config.Monitor.PingIntervalSeconds)*time.Second,
		time.Duration(cfg.Config.Monitor.ReadyIntervalSeconds)*time.Second,
	)

	uptimeUc := usecase.NewUptimeUseCase(uptimeRepo)
	h := httpdelivery.NewHandler(hdlrLogger, uptimeUc)
	routeConfig := httpdelivery.RouteConfig{
		Server:      cfg.Server,
		Config:      cfg.Config,
		Handler:     h,
		DBConnected: func() bool { return pingDatabase(cfg.DB) },
	}
	routeConfig.Setup()

	return sched
}

// pingDatabase reports whether the connection pool can currently reach
// Postgres, used to answer the /health/ready probe.
func pingDatabase(db database.Database) bool {
	sqlDB, err := db.GetDB().DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
