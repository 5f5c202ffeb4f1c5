package upstream

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"countrystats-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	doFunc func(ctx context.Context, req *interfaces.Request) (interfaces.Response, error)
}

func (m *mockHTTPClient) Do(ctx context.Context, req *interfaces.Request) (interfaces.Response, error) {
	if m.doFunc != nil {
		return m.doFunc(ctx, req)
	}
	return &mockResponse{statusCode: 200, body: "{}"}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// respond returns a mock client that always answers with status and body
func respond(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(ctx context.Context, req *interfaces.Request) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

type observation struct {
	endpoint string
	outcome  string
}

// mockMetrics records every observation
type mockMetrics struct {
	mu           sync.Mutex
	observations []observation
}

func (m *mockMetrics) ObserveUpstream(endpoint, outcome string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observations = append(m.observations, observation{endpoint: endpoint, outcome: outcome})
}
