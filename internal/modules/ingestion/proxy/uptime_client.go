package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"voyago/core-api/internal/infrastructure/config"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/pkg/apperror"
)

type uptimeClient struct {
	cfg    *config.RPCConfig
	cache  database.CacheDatabase
	ttl    time.Duration
	log    logger.Logger
	client *http.Client
}

func NewUptimeClient(cfg *config.RPCConfig, cache database.CacheDatabase, ttl time.Duration, log logger.Logger) UptimeProxy {
	timeout := time.Duration(cfg.MonitoringTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &uptimeClient{
		cfg:    cfg,
		cache:  cache,
		ttl:    ttl,
		log:    log.WithField("component", "proxy.uptime"),
		client: &http.Client{Timeout: timeout},
	}
}

func (u *uptimeClient) Uptime(ctx context.Context, service, period string) (map[string]any, error) {
	cacheKey := fmt.Sprintf("uptime:%s:%s", service, period)
	if v, ok := u.readCache(ctx, cacheKey); ok {
		return v, nil
	}

	q := url.Values{}
	q.Set("service", service)
	if period != "" {
		q.Set("period", period)
	}
	target := fmt.Sprintf("http://%s:%d/uptime?%s", u.cfg.MonitoringService.Host, u.cfg.MonitoringService.Port, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to build uptime request", err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		u.log.WithField("error", err.Error()).Warn("uptime rpc call failed")
		return nil, apperror.NewTransient(apperror.CodeInternalError, "monitoring service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "failed to read uptime response", err)
	}
	if resp.StatusCode >= 400 {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "monitoring service returned an error")
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to decode uptime response", err)
	}

	u.writeCache(ctx, cacheKey, result)
	return result, nil
}

func (u *uptimeClient) readCache(ctx context.Context, key string) (map[string]any, bool) {
	if u.cache == nil {
		return nil, false
	}
	raw, err := u.cache.GetClient().Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (u *uptimeClient) writeCache(ctx context.Context, key string, value map[string]any) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := u.cache.GetClient().Set(ctx, key, raw, u.ttl).Err(); err != nil {
		u.log.WithField("error", err.Error()).Warn("failed to populate uptime cache entry")
	}
}
