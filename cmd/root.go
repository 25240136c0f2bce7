// Package cmd implements the restodesk command-line interface.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"restodesk/apiclient"
	"restodesk/config"
)

var (
	cfg    config.Config
	logger zerolog.Logger

	apiURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "restodesk",
	Short: "Field-office toolkit for a restoration business",
	Long: `restodesk browses, exports, and prices the records a restoration
business backend serves: clients, work orders, estimates, invoices,
change orders, equipment, and moisture logs. Calendar events live in a
local database; everything else is fetched from the backend API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if apiURLFlag != "" {
			cfg.APIBaseURL = apiURLFlag
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "",
		"backend API base URL (overrides RESTODESK_API_URL)")
}

func api() *apiclient.Client {
	return apiclient.New(cfg.APIBaseURL)
}

// Execute runs the CLI and reports failures on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
