// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, upstream, logging, rate limiting and charts

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultUpstreamBaseURL is the public CountriesNow API
const DefaultUpstreamBaseURL = "https://countriesnow.space/api/v0.1"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains the population data source configuration
	Upstream UpstreamConfig

	// Log contains logging configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Chart contains summary chart configuration
	Chart ChartConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// UpstreamConfig holds upstream API configuration
type UpstreamConfig struct {
	// BaseURL is joined with every endpoint path
	BaseURL string

	// Timeout bounds each upstream call
	Timeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is "text" or "json"
	Format string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window
	Limit int

	// Window is the rate limit window
	Window time.Duration

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP instead of the
	// connection address. Enable only behind a proxy that sets those headers.
	TrustProxy bool
}

// ChartConfig holds summary chart configuration
type ChartConfig struct {
	Width  int
	Height int

	// TopCities is how many cities a summary ranks
	TopCities int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnvOrDefault("UPSTREAM_BASE_URL", DefaultUpstreamBaseURL),
			Timeout: time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT", 10)) * time.Second,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
		RateLimit: RateLimitConfig{
			Limit:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:     time.Duration(getEnvAsIntOrDefault("RATE_WINDOW", 60)) * time.Second,
			TrustProxy: getEnvAsBoolOrDefault("RATE_LIMIT_TRUST_PROXY", false),
		},
		Chart: ChartConfig{
			Width:     getEnvAsIntOrDefault("CHART_WIDTH", 800),
			Height:    getEnvAsIntOrDefault("CHART_HEIGHT", 600),
			TopCities: getEnvAsIntOrDefault("TOP_CITIES", 5),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("upstream base URL must be an absolute http(s) URL")
	}

	if c.Upstream.Timeout < time.Second {
		return errors.New("upstream timeout must be at least 1 second")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.RateLimit.Limit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Limit > 0 && c.RateLimit.Window < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	if c.Chart.Width < 100 || c.Chart.Height < 100 {
		return errors.New("chart dimensions must be at least 100x100")
	}

	if c.Chart.TopCities < 1 {
		return errors.New("top cities must be at least 1")
	}

	return nil
}
