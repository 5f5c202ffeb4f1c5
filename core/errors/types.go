// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies upstream failures by transport, HTTP status and payload shape

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// TransportError is returned when the upstream could not be reached or the
// exchange was interrupted before a complete response was read.
type TransportError struct {
	Method  string
	URL     string
	Timeout bool
	Err     error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	kind := "transport error"
	if e.Timeout {
		kind = "transport timeout"
	}
	return fmt.Sprintf("%s: %s %s: %v", kind, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError carries the details of a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
	URL        string
}

// ClientError is an upstream 4xx response
type ClientError struct {
	StatusError
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: %d - %s", e.StatusCode, e.Body)
}

// ServerError is an upstream 5xx response
type ServerError struct {
	StatusError
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d - %s", e.StatusCode, e.Body)
}

// UnexpectedError is any other non-2xx upstream response, such as an
// informational status or a redirect that was not followed.
type UnexpectedError struct {
	StatusError
}

// Error implements the error interface
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %d - %s", e.StatusCode, e.Body)
}

// DeserializationError means a 2xx body could not be decoded into the
// requested shape. Single malformed numeric fields never produce it.
type DeserializationError struct {
	URL    string
	Target string
	Err    error
}

// Error implements the error interface
func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode %s response from %s: %v", e.Target, e.URL, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// ClassifyStatus returns nil for 2xx statuses and the matching status error otherwise.
func ClassifyStatus(statusCode int, body, url string) error {
	se := StatusError{StatusCode: statusCode, Body: body, URL: url}
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode >= 400 && statusCode < 500:
		return &ClientError{StatusError: se}
	case statusCode >= 500:
		return &ServerError{StatusError: se}
	default:
		return &UnexpectedError{StatusError: se}
	}
}

// StatusCode extracts the upstream status code from a status error chain.
func StatusCode(err error) (int, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode, true
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode, true
	}
	var unexpectedErr *UnexpectedError
	if errors.As(err, &unexpectedErr) {
		return unexpectedErr.StatusCode, true
	}
	return 0, false
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsTimeout checks if an error is a TransportError caused by a deadline
func IsTimeout(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr) && transportErr.Timeout
}

// IsClient checks if an error is a ClientError
func IsClient(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr)
}

// IsServer checks if an error is a ServerError
func IsServer(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}

// IsUnexpected checks if an error is an UnexpectedError
func IsUnexpected(err error) bool {
	var unexpectedErr *UnexpectedError
	return errors.As(err, &unexpectedErr)
}

// IsDeserialization checks if an error is a DeserializationError
func IsDeserialization(err error) bool {
	var decodeErr *DeserializationError
	return errors.As(err, &decodeErr)
}

// IsUpstream reports whether err came from the upstream exchange rather than
// from caller input.
func IsUpstream(err error) bool {
	return IsTransport(err) || IsClient(err) || IsServer(err) || IsUnexpected(err) || IsDeserialization(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
