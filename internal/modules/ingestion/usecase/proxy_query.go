package usecase

import (
	"context"
	"voyago/core-api/internal/modules/ingestion/proxy"
)

// AggregationQueryUseCase fronts H through the gateway's query-proxy surface.
type AggregationQueryUseCase interface {
	Watermark(ctx context.Context) (map[string]any, error)
	Query(ctx context.Context, kind string, body []byte) (map[string]any, error)
}

type aggregationQueryUseCase struct {
	proxy proxy.AggregationProxy
}

func NewAggregationQueryUseCase(p proxy.AggregationProxy) AggregationQueryUseCase {
	return &aggregationQueryUseCase{proxy: p}
}

func (uc *aggregationQueryUseCase) Watermark(ctx context.Context) (map[string]any, error) {
	return uc.proxy.Watermark(ctx)
}

func (uc *aggregationQueryUseCase) Query(ctx context.Context, kind string, body []byte) (map[string]any, error) {
	return uc.proxy.Query(ctx, kind, body)
}

// UptimeQueryUseCase fronts I through the gateway's query-proxy surface.
type UptimeQueryUseCase interface {
	Uptime(ctx context.Context, service, period string) (map[string]any, error)
}

type uptimeQueryUseCase struct {
	proxy proxy.UptimeProxy
}

func NewUptimeQueryUseCase(p proxy.UptimeProxy) UptimeQueryUseCase {
	return &uptimeQueryUseCase{proxy: p}
}

func (uc *uptimeQueryUseCase) Uptime(ctx context.Context, service, period string) (map[string]any, error) {
	return uc.proxy.Uptime(ctx, service, period)
}
