package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"voyago/core-api/internal/app"
	"voyago/core-api/internal/infrastructure/config"
	server "voyago/core-api/internal/infrastructure/http"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/metrics"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
)

func main() {
	globalCfg := config.InitGlobalConfig("config/config.yaml")

	log := logger.New(globalCfg, nil)
	appLogger := log.WithFields(map[string]any{
		"service": globalCfg.App.Name,
		"version": globalCfg.App.Version,
		"env":     globalCfg.App.Env,
		"port":    globalCfg.Http.Port,
		"domain":  "gateway",
	})

	met, err := metrics.New(&globalCfg.Telemetry, globalCfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer met.Close()

	trc, err := tracer.New(&globalCfg.Telemetry, globalCfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer trc.Close()

	l := appLogger.WithField("component", "app")
	l.Info("ingestion gateway starting")

	srv := server.NewServer(globalCfg, appLogger)
	bootstrap := app.BootstrapGatewayConfig{
		App:     srv.App,
		Config:  globalCfg,
		Log:     appLogger,
		Tracer:  trc,
		Metrics: met,
	}
	bootstrap.Run()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-quit
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			l.WithField("error", err.Error()).Error("server forced to shutdown")
		}
		bootstrap.Stop()
	}()

	if err := srv.Start(); err != nil {
		l.WithField("error", err.Error()).Error("failed to start server")
	}
}
