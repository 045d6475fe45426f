package footywire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
	"github.com/afl-project/supercoach-ingest/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler, maxRetries int) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient:          server.Client(),
		BaseURL:             server.URL,
		Timeout:             time.Second,
		MaxRetries:          maxRetries,
		CircuitFailureCount: 3,
		CircuitOpenTimeout:  time.Minute,
		Logger:              logging.NewNop(),
	})
	return client, server
}

func TestClient_FetchPrices(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pricesPath {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(samplePricesPage))
	}), 0)

	table, err := client.FetchPrices(context.Background())
	if err != nil {
		t.Fatalf("fetch prices: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(samplePricesPage))
	}), 2)

	if _, err := client.FetchPrices(context.Background()); err != nil {
		t.Fatalf("fetch prices: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}), 3)

	if _, err := client.FetchPrices(context.Background()); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single request, got %d", got)
	}
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), 0)

	for i := 0; i < 3; i++ {
		if _, err := client.FetchPrices(context.Background()); err == nil {
			t.Fatalf("attempt %d: expected failure", i)
		}
	}

	_, err := client.FetchPrices(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable after circuit opened, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected circuit to block the fourth request, got %d calls", got)
	}
}
