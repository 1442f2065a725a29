/*
|------------------------------------------------------------------------------------
| CLIENT ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| Talks to F (the raw persister's RPC surface) the same way the gateway's
| proxy package talks to H and I: plain net/http against an internal HTTP+
| JSON contract, no hand-authored protobuf. FetchAllEvents runs the five
| per-kind fetches concurrently with a WaitGroup and a mutex-guarded result
| struct (golang.org/x/sync/errgroup is not in the pack; this is the
| goroutine/channel idiom the teacher itself favors for fan-out-free code).
|------------------------------------------------------------------------------------
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/pkg/apperror"
)

type TimeRange struct {
	Start int64
	End   int64
}

type rawRequest struct {
	TimeRange  rawTimeRangeDTO `json:"time_range"`
	Pagination rawPaginationDTO `json:"pagination"`
}

type rawTimeRangeDTO struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type rawPaginationDTO struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// EventVector is the combined set of raw events pulled from F for one
// aggregator tick, across all five kinds.
type EventVector struct {
	PageViews   []entity.PageView
	Clicks      []entity.Click
	Performance []entity.Performance
	Errors      []entity.ErrorEvent
	Custom      []entity.CustomEvent
}

type RawClient interface {
	GetPageViews(ctx context.Context, tr TimeRange) ([]entity.PageView, error)
	GetClicks(ctx context.Context, tr TimeRange) ([]entity.Click, error)
	GetPerformance(ctx context.Context, tr TimeRange) ([]entity.Performance, error)
	GetErrors(ctx context.Context, tr TimeRange) ([]entity.ErrorEvent, error)
	GetCustomEvents(ctx context.Context, tr TimeRange) ([]entity.CustomEvent, error)
	FetchAllEvents(ctx context.Context, tr TimeRange) (EventVector, error)
}

type rawClient struct {
	cfg    *config.RPCConfig
	client *http.Client
}

func NewRawClient(cfg *config.RPCConfig) RawClient {
	timeout := 10 * time.Second
	return &rawClient{cfg: cfg, client: &http.Client{Timeout: timeout}}
}

func (c *rawClient) baseURL() string {
	return fmt.Sprintf("http://%s:%d", c.cfg.RawService.Host, c.cfg.RawService.Port)
}

func fetch[T any](ctx context.Context, c *rawClient, path string, tr TimeRange) ([]T, error) {
	body, err := json.Marshal(rawRequest{
		TimeRange:  rawTimeRangeDTO{Start: tr.Start, End: tr.End},
		Pagination: rawPaginationDTO{Limit: 100000, Offset: 0},
	})
	if err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to encode raw rpc request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to build raw rpc request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "raw persister unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "failed to read raw rpc response", err)
	}
	if resp.StatusCode >= 400 {
		return nil, apperror.NewTransient(apperror.CodeInternalError, "raw persister returned an error")
	}

	var decoded struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, apperror.NewInternal(apperror.CodeInternalError, "failed to decode raw rpc response", err)
	}
	return decoded.Items, nil
}

func (c *rawClient) GetPageViews(ctx context.Context, tr TimeRange) ([]entity.PageView, error) {
	return fetch[entity.PageView](ctx, c, "/rpc/raw/page-views", tr)
}

func (c *rawClient) GetClicks(ctx context.Context, tr TimeRange) ([]entity.Click, error) {
	return fetch[entity.Click](ctx, c, "/rpc/raw/clicks", tr)
}

func (c *rawClient) GetPerformance(ctx context.Context, tr TimeRange) ([]entity.Performance, error) {
	return fetch[entity.Performance](ctx, c, "/rpc/raw/performance", tr)
}

func (c *rawClient) GetErrors(ctx context.Context, tr TimeRange) ([]entity.ErrorEvent, error) {
	return fetch[entity.ErrorEvent](ctx, c, "/rpc/raw/errors", tr)
}

func (c *rawClient) GetCustomEvents(ctx context.Context, tr TimeRange) ([]entity.CustomEvent, error) {
	return fetch[entity.CustomEvent](ctx, c, "/rpc/raw/custom-events", tr)
}

// FetchAllEvents runs all five per-kind fetches concurrently, returning the
// first error encountered (the tick that called this MUST NOT advance the
// watermark on any failure, per spec §4.G step 6).
func (c *rawClient) FetchAllEvents(ctx context.Context, tr TimeRange) (EventVector, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		vector EventVector
		firstErr error
	)

	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		v, err := c.GetPageViews(ctx, tr)
		record(err)
		mu.Lock()
		vector.PageViews = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		v, err := c.GetClicks(ctx, tr)
		record(err)
		mu.Lock()
		vector.Clicks = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		v, err := c.GetPerformance(ctx, tr)
		record(err)
		mu.Lock()
		vector.Performance = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		v, err := c.GetErrors(ctx, tr)
		record(err)
		mu.Lock()
		vector.Errors = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		v, err := c.GetCustomEvents(ctx, tr)
		record(err)
		mu.Lock()
		vector.Custom = v
		mu.Unlock()
	}()
	wg.Wait()

	if firstErr != nil {
		return EventVector{}, firstErr
	}
	return vector, nil
}
