// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"io"
)

// Header is a single request header. Requests carry headers as an ordered
// slice so they are applied in the order the caller listed them.
type Header struct {
	Key   string
	Value string
}

// Request describes an outgoing HTTP request against a fully resolved URL.
type Request struct {
	Method  string
	URL     string
	Headers []Header

	// Body is nil for requests without a payload
	Body io.Reader
}

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Do sends the request and returns the response regardless of its status
	// code. An error means no response was received.
	Do(ctx context.Context, req *Request) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
