package ingestion

import (
	"voyago/core-api/internal/infrastructure/broker"
	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/infrastructure/telemetry/tracer"
	httpdelivery "voyago/core-api/internal/modules/ingestion/delivery/http"
	"voyago/core-api/internal/modules/ingestion/proxy"
	"voyago/core-api/internal/modules/ingestion/usecase"
	"time"

	"github.com/gofiber/fiber/v2"
)

type HttpModuleConfig struct {
	Config    *config.Config
	Server    *fiber.App
	Cache     database.CacheDatabase
	Log       logger.Logger
	Tracer    tracer.Tracer
	Publisher *broker.Publisher
}

// RegisterHttpModule wires the ingestion gateway: five publish usecases
// backed by the shared broker publisher, plus the read-only aggregation
// and uptime query proxy backed by a short-TTL Redis cache.
func RegisterHttpModule(cfg HttpModuleConfig) {
	ucLogger := cfg.Log.WithField("component", "usecase")
	hdlrLogger := cfg.Log.WithField("component", "handler")

	pub := cfg.Publisher

	publishPageView := usecase.NewPublishPageViewUseCase(ucLogger, cfg.Tracer, pub, config.QueuePageViews)
	publishClick := usecase.NewPublishClickUseCase(ucLogger, cfg.Tracer, pub, config.QueueClicks)
	publishPerf := usecase.NewPublishPerformanceUseCase(ucLogger, cfg.Tracer, pub, config.QueuePerformanceEvent)
	publishErr := usecase.NewPublishErrorEventUseCase(ucLogger, cfg.Tracer, pub, config.QueueErrorEvent)
	publishCustom := usecase.NewPublishCustomEventUseCase(ucLogger, cfg.Tracer, pub, config.QueueCustomEvent)

	cacheTTL := time.Duration(cfg.Config.Redis.TTL) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Second
	}
	aggClient := proxy.NewAggregationClient(&cfg.Config.RPC, cfg.Cache, cacheTTL, cfg.Log)
	upClient := proxy.NewUptimeClient(&cfg.Config.RPC, cfg.Cache, cacheTTL, cfg.Log)

	aggQuery := usecase.NewAggregationQueryUseCase(aggClient)
	upQuery := usecase.NewUptimeQueryUseCase(upClient)

	h := httpdelivery.NewHandler(hdlrLogger, httpdelivery.HandlerUseCases{
		PublishPageView:   publishPageView,
		PublishClick:      publishClick,
		PublishPerf:       publishPerf,
		PublishErrorEvent: publishErr,
		PublishCustom:     publishCustom,
	})
	proxyHandler := httpdelivery.NewProxyHandler(aggQuery, upQuery)

	routeConfig := httpdelivery.RouteConfig{
		Server:          cfg.Server,
		Config:          cfg.Config,
		Handler:         h,
		Proxy:           proxyHandler,
		BrokerConnected: pub.Connected,
	}
	routeConfig.Setup()
}
