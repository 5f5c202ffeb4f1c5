// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

import "time"

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records upstream call outcomes; optional
	Metrics Metrics
}

// Metrics records the outcome of upstream calls.
type Metrics interface {
	// ObserveUpstream records one finished upstream call. Outcome is a short
	// label such as "ok", "client_error" or "timeout".
	ObserveUpstream(endpoint, outcome string, duration time.Duration)
}
