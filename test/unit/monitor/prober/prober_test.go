package prober_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"voyago/core-api/internal/modules/monitor/prober"

	"github.com/stretchr/testify/assert"
)

func splitHostPort(t *testing.T, rawURL string) (string, int) {
	u, err := url.Parse(rawURL)
	assert.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	assert.NoError(t, err)
	return u.Hostname(), port
}

func TestPing_OKOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	host, port := splitHostPort(t, srv.URL)
	p := prober.New(time.Second)
	result := p.Ping(context.Background(), host, port)
	assert.True(t, result.Reachable)
	assert.True(t, result.OK)
}

func TestPing_FailOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	host, port := splitHostPort(t, srv.URL)
	p := prober.New(time.Second)
	result := p.Ping(context.Background(), host, port)
	assert.True(t, result.Reachable)
	assert.False(t, result.OK)
}

func TestPing_UnreachableOnConnectionFailure(t *testing.T) {
	p := prober.New(200 * time.Millisecond)
	result := p.Ping(context.Background(), "127.0.0.1", 1) // nothing listens on port 1
	assert.False(t, result.Reachable)
	assert.False(t, result.OK)
}

func TestReady_OKWhenDatabaseConnectedTrue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/ready", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready","database_connected":true}`))
	}))
	defer srv.Close()

	host, port := splitHostPort(t, srv.URL)
	p := prober.New(time.Second)
	result := p.Ready(context.Background(), host, port)
	assert.True(t, result.Reachable)
	assert.True(t, result.OK)
}

func TestReady_FailWhenDatabaseConnectedFalseEvenOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"not_ready","database_connected":false}`))
	}))
	defer srv.Close()

	host, port := splitHostPort(t, srv.URL)
	p := prober.New(time.Second)
	result := p.Ready(context.Background(), host, port)
	assert.True(t, result.Reachable)
	assert.False(t, result.OK)
}

func TestReady_FailOn503(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	host, port := splitHostPort(t, srv.URL)
	p := prober.New(time.Second)
	result := p.Ready(context.Background(), host, port)
	assert.True(t, result.Reachable)
	assert.False(t, result.OK)
}
