// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware wiring and the metrics mount

package api

import (
	"net/http"
	"time"

	"countrystats-api/api/middleware"
	"countrystats-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	// Title is the OpenAPI title of the service
	Title = "Country Stats API"

	// Version is the OpenAPI version of the service
	Version = "1.0.0"

	// MetricsPath is where MetricsHandler is mounted
	MetricsPath = "/metrics"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window

	// TrustProxy keys rate limits by forwarding headers; see middleware.WithTrustedProxy
	TrustProxy bool

	// MetricsHandler is mounted at MetricsPath when set
	MetricsHandler http.Handler
}

// NewAPI creates and configures a new Huma API instance
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		var opts []middleware.RateLimiterOption
		if cfg.TrustProxy {
			opts = append(opts, middleware.WithTrustedProxy())
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, opts...)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if cfg.MetricsHandler != nil {
		router.Method(http.MethodGet, MetricsPath, cfg.MetricsHandler)
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "City population statistics and country facts backed by the CountriesNow API"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
