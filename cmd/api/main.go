// ABOUTME: Main entry point for the Country Stats API
// ABOUTME: Cobra root command with serve, cities, info and version subcommands

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
	appName = "countrystats-api"
)

// BuildTime is set with -ldflags at release time
var BuildTime = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// overrides holds command line values that take precedence over the environment
type overrides struct {
	baseURL  string
	logLevel string
}

func rootCmd() *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   appName,
		Short: "City population statistics and country facts",
		Long: `Country Stats API serves city population statistics and country facts
fetched from the CountriesNow API.

Without a subcommand it starts the HTTP server. Configuration is read from
the environment (PORT, UPSTREAM_BASE_URL, UPSTREAM_TIMEOUT, LOG_LEVEL, ...).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), o)
		},
	}

	cmd.PersistentFlags().StringVar(&o.baseURL, "base-url", "", "Upstream base URL (overrides UPSTREAM_BASE_URL)")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), o)
			},
		},
		citiesCmd(&o),
		infoCmd(&o),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}
