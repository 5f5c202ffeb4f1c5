// ABOUTME: Standard HTTP client implementation with connect timeout and redirect following
// ABOUTME: Sends requests once and hands every response back; status handling is the caller's job

package standard

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"countrystats-api/core/interfaces"
)

const userAgent = "CountryStatsAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithLogger logs every outgoing request and its outcome at debug level
func WithLogger(logger interfaces.Logger) Option {
	return func(c *StandardHTTPClient) {
		if logger == nil {
			return
		}
		c.client.Transport = &LoggingRoundTripper{
			Transport: c.client.Transport,
			Logger:    logger,
		}
	}
}

// NewStandardHTTPClient creates a new HTTP client. connectTimeout bounds dialing
// and the TLS handshake; the overall deadline of a call comes from its context.
// Redirects are followed with the net/http default policy.
func NewStandardHTTPClient(connectTimeout time.Duration, opts ...Option) *StandardHTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = connectTimeout

	c := &StandardHTTPClient{
		client: &http.Client{
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs the request without retries
func (c *StandardHTTPClient) Do(ctx context.Context, r *interfaces.Request) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, r.Body)
	if err != nil {
		return nil, err
	}

	for _, h := range r.Headers {
		req.Header.Add(h.Key, h.Value)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
