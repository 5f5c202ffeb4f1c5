package main

import (
	"context"
	"fmt"
	"io"

	"countrystats-api/core/city"
	"countrystats-api/core/country"
	"countrystats-api/core/interfaces"
	"countrystats-api/core/summary"
	"countrystats-api/core/upstream"
	"countrystats-api/infrastructure/chart/gochart"
	stdhttp "countrystats-api/infrastructure/http/standard"
	stdlogger "countrystats-api/infrastructure/logger/standard"
	"countrystats-api/infrastructure/metrics/prometheus"
	"countrystats-api/pkg/config"
	"countrystats-api/pkg/featureflags"
)

// app holds the wired services shared by every subcommand
type app struct {
	cfg       *config.Config
	logger    interfaces.Logger
	flags     featureflags.Manager
	metrics   *prometheus.UpstreamMetrics
	cities    *city.Service
	countries *country.Service
	summary   *summary.Service
}

// newApp loads and validates configuration, then wires the services. Logs go to logOut.
func newApp(o overrides, logOut io.Writer) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if o.baseURL != "" {
		cfg.Upstream.BaseURL = o.baseURL
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := stdlogger.NewLogger(cfg.Log.Level, cfg.Log.Format, logOut)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	flags := featureflags.NewEnvManager("FEATURE_", nil)

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.Upstream.Timeout, stdhttp.WithLogger(logger)),
		Logger:     logger,
	}

	var metrics *prometheus.UpstreamMetrics
	if flags.IsEnabled(context.Background(), featureflags.MetricsEnabled) {
		metrics = prometheus.NewUpstreamMetrics()
		deps.Metrics = metrics
	}

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, deps)
	renderer := gochart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)

	return &app{
		cfg:       cfg,
		logger:    logger,
		flags:     flags,
		metrics:   metrics,
		cities:    city.NewService(client, deps),
		countries: country.NewService(client, deps),
		summary:   summary.NewService(renderer, cfg.Chart.TopCities, deps),
	}, nil
}
