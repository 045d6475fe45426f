package footywire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
	"github.com/afl-project/supercoach-ingest/internal/platform/resilience"
	"github.com/afl-project/supercoach-ingest/internal/usecase"
)

const (
	defaultBaseURL = "https://www.footywire.com"
	pricesPath     = "/afl/footy/supercoach_prices"

	maxResponseBytes = 6 << 20
)

var errFootyWireTransient = crerr.New("footywire transient failure")

type ClientConfig struct {
	HTTPClient          *http.Client
	BaseURL             string
	Timeout             time.Duration
	MaxRetries          int
	CircuitFailureCount int
	CircuitOpenTimeout  time.Duration
	Logger              *logging.Logger
}

// Client fetches the SuperCoach prices page. Transient failures are
// retried with linear backoff; a run of failures opens the circuit so
// a broken site does not absorb the whole retry budget of every run.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitFailureCount, cfg.CircuitOpenTimeout),
	}
}

// FetchPrices downloads and parses the current prices table.
func (c *Client) FetchPrices(ctx context.Context) (PriceTable, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "footywire circuit breaker rejected request", "state", c.breaker.State())
		return PriceTable{}, fmt.Errorf("%w: footywire is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	raw, err := c.executeRequest(ctx, c.baseURL+pricesPath)
	if err != nil {
		if crerr.Is(err, errFootyWireTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return PriceTable{}, err
	}
	c.breaker.RecordSuccess()

	table, err := ParsePriceTable(raw)
	if err != nil {
		return PriceTable{}, fmt.Errorf("parse prices page: %w", err)
	}

	c.logger.InfoContext(ctx, "fetched supercoach prices",
		"rows", len(table.Rows),
		"columns", len(table.Headers),
	)
	return table, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/html")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFootyWireTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFootyWireTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: footywire status=%d", errFootyWireTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("footywire status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("footywire request failed")
	}
	c.logger.WarnContext(ctx, "footywire request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
