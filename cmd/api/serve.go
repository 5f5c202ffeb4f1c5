package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countrystats-api/api"
	"countrystats-api/api/handlers"
	"countrystats-api/pkg/featureflags"
)

const shutdownTimeout = 30 * time.Second

// newRouter builds the HTTP handler with every route and middleware the
// configuration and feature flags enable.
func newRouter(a *app) http.Handler {
	ctx := context.Background()

	apiConfig := api.APIConfig{
		Logger: a.logger,
	}
	if a.flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = a.cfg.RateLimit.Limit
		apiConfig.RateWindow = a.cfg.RateLimit.Window
		apiConfig.TrustProxy = a.cfg.RateLimit.TrustProxy
	}
	if a.metrics != nil {
		apiConfig.MetricsHandler = a.metrics.Handler()
	}

	humaAPI, router := api.NewAPI(apiConfig)

	countryHandler := handlers.NewCountryHandler(a.cities, a.countries, a.summary, a.flags, a.logger)
	countryHandler.RegisterRoutes(humaAPI)

	return router
}

func serve(ctx context.Context, o overrides) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(o, os.Stdout)
	if err != nil {
		return err
	}

	a.logger.Info("Starting Country Stats API", map[string]interface{}{
		"port":          a.cfg.Server.Port,
		"upstream":      a.cfg.Upstream.BaseURL,
		"timeout":       a.cfg.Upstream.Timeout.String(),
		"feature_flags": a.flags.GetAllFlags(),
	})

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      newRouter(a),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: a.cfg.Upstream.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.logger.Info("Server stopped", nil)
	return nil
}
