package city

import (
	"context"
	"io"
	"strings"

	"countrystats-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	doFunc func(ctx context.Context, req *interfaces.Request) (interfaces.Response, error)
	calls  []string
}

func (m *mockHTTPClient) Do(ctx context.Context, req *interfaces.Request) (interfaces.Response, error) {
	m.calls = append(m.calls, req.URL)
	if m.doFunc != nil {
		return m.doFunc(ctx, req)
	}
	return &mockResponse{statusCode: 200, body: `{"error":false,"msg":"","data":[]}`}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

func respond(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(ctx context.Context, req *interfaces.Request) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

// mockLogger discards everything but counts warnings
type mockLogger struct {
	warnings []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
