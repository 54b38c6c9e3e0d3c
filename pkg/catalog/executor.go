package catalog

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/observability"
)

const (
	// DefaultTimeout applies when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a fresh correlation ID on every request.
	RequestIDHeader = "X-Request-Id"
)

// NewHTTPClient creates a pooled HTTP client for catalog requests. A
// non-positive timeout selects [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Executor performs single GET requests for assembled query addresses.
type Executor struct {
	http    *http.Client
	logger  *log.Logger
	headers map[string]string
}

// NewExecutor creates an Executor around client. A nil client gets
// [NewHTTPClient] with the default timeout and a nil logger uses
// log.Default(). Headers are applied to all requests; pass nil if none are
// needed.
func NewExecutor(client *http.Client, logger *log.Logger, headers map[string]string) *Executor {
	if client == nil {
		client = NewHTTPClient(0)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Executor{
		http:    client,
		logger:  logger,
		headers: headers,
	}
}

// Execute issues one GET for rawURL and returns the response body.
//
// On a transport failure the body is "" and the error has code
// NETWORK_ERROR with the transport's message as its cause. On success the
// error is nil, whatever the HTTP status.
func (e *Executor) Execute(ctx context.Context, rawURL string) (string, error) {
	id := uuid.NewString()
	logger := e.logger.With("request_id", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logger.Warn("request rejected", "url", rawURL, "err", err)
		return "", errs.Wrap(errs.ErrCodeNetwork, err, "GET %s", rawURL)
	}
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(RequestIDHeader, id)

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	logger.Debug("GET", "url", rawURL)

	start := time.Now()
	resp, err := e.http.Do(req)
	if err != nil {
		return "", e.fail(ctx, logger, host, path, rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", e.fail(ctx, logger, host, path, rawURL, err)
	}

	elapsed := time.Since(start)
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, elapsed)
	logger.Debug("response", "status", resp.StatusCode, "bytes", len(body), "elapsed", elapsed.Round(time.Millisecond))
	return string(body), nil
}

func (e *Executor) fail(ctx context.Context, logger *log.Logger, host, path, rawURL string, err error) error {
	observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
	logger.Warn("request failed", "url", rawURL, "err", err)
	return errs.Wrap(errs.ErrCodeNetwork, err, "GET %s", rawURL)
}

// Close releases idle pooled connections. The executor remains usable.
func (e *Executor) Close() error {
	e.http.CloseIdleConnections()
	return nil
}
