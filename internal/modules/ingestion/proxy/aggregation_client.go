/*
|------------------------------------------------------------------------------------
| PROXY ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| The gateway proxies H (aggregate RPC) and I (uptime HTTP) rather than
| touching their databases directly — "delivery talks to a contract, never
| to infrastructure directly", with the contract backed by another service
| instead of Postgres.
| A short-TTL Redis cache sits in front of both calls: watermark/aggregate
| reads are read-mostly and tolerate a few seconds of staleness, so a cache
| hit saves a round trip to H without risking stale data past one tick.
|------------------------------------------------------------------------------------
*/
package proxy

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/pkg/apperror"
)

func hashBody(body []byte) [sha1.Size]byte {
	return sha1.Sum(body)
}

type aggregationClient struct {
	cfg    *config.RPCConfig
	cache  database.CacheDatabase
	ttl    time.Duration
	log    logger.Logger
	client *http.Client
}

func NewAggregationClient(cfg *config.RPCConfig, cache database.CacheDatabase, ttl time.Duration, log logger.Logger) AggregationProxy {
	timeout := time.Duration(cfg.AggregationTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &aggregationClient{
		cfg:    cfg,
		cache:  cache,
		ttl:    ttl,
		log:    log.WithField("component", "proxy.aggregation"),
		client: &http.Client{Timeout: timeout},
	}
}

func (a *aggregationClient) baseURL() string {
	return fmt.Sprintf("http://%s:%d", a.cfg.AggregationService.Host, a.cfg.AggregationService.Port)
}

func (a *aggregationClient) Watermark(ctx context.Context) (map[string]any, error) {
	cacheKey := "agg:watermark"
	if v, ok := a.readCache(ctx, cacheKey); ok {
		return v, nil
	}

	result, err := a.get(ctx, "/rpc/aggregation/watermark")
	if err != nil {
		return nil, err
	}
	a.writeCache(ctx, cacheKey, result)
	return result, nil
}

func (a *aggregationClient) Query(ctx context.Context, kind string, body []byte) (map[string]any, error) {
	cacheKey := fmt.Sprintf("agg:%s:%x", kind, hashBody(body))
	if v, ok := a.readCache(ctx, cacheKey); ok {
		return v, nil
	}

	result, err := a.post(ctx, "/rpc/aggregation/"+kind, body)
	if err != nil {
		return nil, err
	}
	a.writeCache(ctx, cacheKey, result)
	return result, nil
}

func (a *aggregationClient) get(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL()+path, nil)
	if err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to build aggregation request", err)
	}
	return a.do(req)
}

func (a *aggregationClient) post(ctx context.Context, path string, body []byte) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to build aggregation request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func (a *aggregationClient) do(req *http.Request) (map[string]any, error) {
	resp, err := a.client.Do(req)
	if err != nil {
		a.log.WithField("error", err.Error()).Warn("aggregation rpc call failed")
		return nil, apperror.NewTransient(apperror.CodeInternalError, "aggregation service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "failed to read aggregation response", err)
	}

	if resp.StatusCode >= 400 {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "aggregation service returned an error")
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to decode aggregation response", err)
	}
	return result, nil
}

func (a *aggregationClient) readCache(ctx context.Context, key string) (map[string]any, bool) {
	if a.cache == nil {
		return nil, false
	}
	raw, err := a.cache.GetClient().Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (a *aggregationClient) writeCache(ctx context.Context, key string, value map[string]any) {
	if a.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := a.cache.GetClient().Set(ctx, key, raw, a.ttl).Err(); err != nil {
		a.log.WithField("error", err.Error()).Warn("failed to populate aggregation cache entry")
	}
}
