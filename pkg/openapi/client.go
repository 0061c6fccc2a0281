// Package openapi implements the HTTP transport for the guild open API:
// base-URL selection, bot authorization, and the raw POST capability the
// message dispatcher consumes.
//
// The transport performs no retries, rate limiting or session
// management; callers get every failure as-is.
package openapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/tinyland-inc/qguild/pkg/logger"
)

const (
	// ProductionURL is the default API host.
	ProductionURL = "https://api.sgroup.qq.com"
	// SandboxURL is the sandbox environment host.
	SandboxURL = "https://sandbox.api.sgroup.qq.com"

	// traceIDHeader carries the platform's server-side trace identifier.
	traceIDHeader = "X-Tps-Trace-Id"

	userAgent = "qguild (+https://github.com/tinyland-inc/qguild)"

	defaultTimeout = 10 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithSandbox routes calls to the sandbox environment.
func WithSandbox() Option {
	return func(c *Client) { c.baseURL = SandboxURL }
}

// WithBaseURL overrides the API host entirely.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// Client is a transport handle for the guild open API. It injects the
// bot authorization header on every call and is safe for concurrent use.
type Client struct {
	resty   *resty.Client
	baseURL string
	timeout time.Duration
}

// New returns a client authenticated as the given bot.
func New(appID, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: ProductionURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.resty = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Authorization", fmt.Sprintf("Bot %s.%s", appID, token)).
		SetHeader("User-Agent", userAgent)

	return c
}

// BaseURL returns the API host this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is a non-2xx response from the platform, carrying the raw
// body and the server-side trace identifier for support escalation.
type StatusError struct {
	StatusCode int
	Body       []byte
	TraceID    string
}

func (e *StatusError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("openapi: status %d (trace %s): %s", e.StatusCode, e.TraceID, e.Body)
	}
	return fmt.Sprintf("openapi: status %d: %s", e.StatusCode, e.Body)
}

// Post issues a POST against the API and returns the raw response body.
// headers are per-request extras (content-type selection by the
// encoder); body may be any JSON-marshalable value or pre-rendered
// []byte. Each call carries a fresh request id for log correlation.
func (c *Client) Post(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error) {
	reqID := uuid.NewString()

	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetHeader("X-Request-Id", reqID).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: POST %s: %w", path, err)
	}

	traceID := resp.Header().Get(traceIDHeader)
	logger.DebugCF("openapi", "POST "+path, map[string]any{
		"status":     resp.StatusCode(),
		"request_id": reqID,
		"trace_id":   traceID,
	})

	if !resp.IsSuccess() {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
			TraceID:    traceID,
		}
	}
	return resp.Body(), nil
}
