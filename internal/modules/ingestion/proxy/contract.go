package proxy

import "context"

// AggregationProxy converts the gateway's JSON query surface into calls
// against H (the aggregator's aggregate RPC), returning H's JSON verbatim
// to the caller — the gateway does no aggregation of its own.
type AggregationProxy interface {
	Watermark(ctx context.Context) (map[string]any, error)
	Query(ctx context.Context, kind string, body []byte) (map[string]any, error)
}

// UptimeProxy converts the gateway's uptime query surface into calls
// against I (the health monitor's HTTP read surface).
type UptimeProxy interface {
	Uptime(ctx context.Context, service, period string) (map[string]any, error)
}
