// ABOUTME: Typed upstream client that decodes JSON responses into caller-chosen types
// ABOUTME: Joins endpoints to a fixed base URL and classifies every failure it sees

package upstream

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "countrystats-api/core/errors"
	"countrystats-api/core/interfaces"
)

// DefaultTimeout bounds a call when neither the request nor the client sets one
const DefaultTimeout = 10 * time.Second

// Method is one of the HTTP methods the client supports
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// Request describes a single call relative to the client's base URL
type Request struct {
	Method   Method
	Endpoint string
	Headers  []interfaces.Header

	// Body is required for POST and PUT and ignored otherwise
	Body *string

	// Timeout overrides the client timeout when positive
	Timeout time.Duration
}

// Client is safe for concurrent use; nothing in it changes after construction.
type Client struct {
	baseURL string
	timeout time.Duration
	http    interfaces.HTTPClient
	logger  interfaces.Logger
	metrics interfaces.Metrics
}

// NewClient creates a client for baseURL. A non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, deps interfaces.Dependencies) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		timeout: timeout,
		http:    deps.HTTPClient,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
}

// NormalizeBaseURL makes the base URL end with exactly one slash.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/"
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the default per-call timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// URL resolves an endpoint against the base URL
func (c *Client) URL(endpoint string) string {
	return c.baseURL + strings.TrimLeft(endpoint, "/")
}

// JSONHeaders returns the header set every upstream call sends.
func JSONHeaders() []interfaces.Header {
	return []interfaces.Header{{Key: "Content-Type", Value: "application/json"}}
}

func (r Request) validate() error {
	switch r.Method {
	case MethodGet, MethodDelete:
		return nil
	case MethodPost, MethodPut:
		if r.Body == nil {
			return &apperrors.ValidationError{Field: "body", Message: fmt.Sprintf("%s requires a body", r.Method)}
		}
		return nil
	default:
		return &apperrors.ValidationError{Field: "method", Message: fmt.Sprintf("unsupported method %q", r.Method)}
	}
}

// Do sends req and decodes a 2xx body into T. Non-2xx responses become
// ClientError, ServerError or UnexpectedError; network failures become
// TransportError; an undecodable body becomes DeserializationError.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	if err := req.validate(); err != nil {
		return out, err
	}
	if c.http == nil {
		return out, stderrors.New("upstream: HTTP client not configured")
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := c.URL(req.Endpoint)
	outgoing := &interfaces.Request{
		Method:  string(req.Method),
		URL:     url,
		Headers: req.Headers,
	}
	if req.Method == MethodPost || req.Method == MethodPut {
		outgoing.Body = strings.NewReader(*req.Body)
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, outgoing)
	if err != nil {
		terr := &apperrors.TransportError{Method: string(req.Method), URL: url, Timeout: isTimeout(ctx, err), Err: err}
		c.observe(req.Endpoint, outcome(terr), start)
		return out, terr
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		terr := &apperrors.TransportError{Method: string(req.Method), URL: url, Timeout: isTimeout(ctx, err), Err: err}
		c.observe(req.Endpoint, outcome(terr), start)
		return out, terr
	}

	if err := apperrors.ClassifyStatus(resp.StatusCode(), string(raw), url); err != nil {
		c.observe(req.Endpoint, outcome(err), start)
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		derr := &apperrors.DeserializationError{URL: url, Target: fmt.Sprintf("%T", zero), Err: err}
		c.observe(req.Endpoint, outcome(derr), start)
		return zero, derr
	}

	c.observe(req.Endpoint, outcome(nil), start)
	return out, nil
}

// Get sends a GET request
func Get[T any](ctx context.Context, c *Client, endpoint string, headers ...interfaces.Header) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodGet, Endpoint: endpoint, Headers: headers})
}

// Post sends a POST request with body
func Post[T any](ctx context.Context, c *Client, endpoint, body string, headers ...interfaces.Header) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodPost, Endpoint: endpoint, Headers: headers, Body: &body})
}

// Put sends a PUT request with body
func Put[T any](ctx context.Context, c *Client, endpoint, body string, headers ...interfaces.Header) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodPut, Endpoint: endpoint, Headers: headers, Body: &body})
}

// Delete sends a DELETE request
func Delete[T any](ctx context.Context, c *Client, endpoint string, headers ...interfaces.Header) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodDelete, Endpoint: endpoint, Headers: headers})
}

func (c *Client) observe(endpoint, result string, start time.Time) {
	duration := time.Since(start)

	if c.metrics != nil {
		c.metrics.ObserveUpstream(metricEndpoint(endpoint), result, duration)
	}
	if c.logger != nil {
		c.logger.Debug("Upstream call finished", map[string]interface{}{
			"endpoint":    endpoint,
			"outcome":     result,
			"duration_ms": duration.Milliseconds(),
		})
	}
}

// metricEndpoint drops the query string to keep label cardinality bounded.
func metricEndpoint(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}
	return strings.Trim(endpoint, "/")
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.IsTimeout(err):
		return "timeout"
	case apperrors.IsTransport(err):
		return "transport_error"
	case apperrors.IsClient(err):
		return "client_error"
	case apperrors.IsServer(err):
		return "server_error"
	case apperrors.IsUnexpected(err):
		return "unexpected_status"
	case apperrors.IsDeserialization(err):
		return "decode_error"
	default:
		return "error"
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
