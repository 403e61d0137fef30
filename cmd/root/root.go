// Package root contains the root command for the application
package root

import (
	"brnotif/notif-parse/internal/common"
	"brnotif/notif-parse/internal/config"
	"brnotif/notif-parse/internal/engine"
	"brnotif/notif-parse/internal/extractors"
	"brnotif/notif-parse/internal/vendors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to subcommands
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "notif-parse",
		Short: "A CLI tool to extract transaction data from banking app notifications.",
		Long: `notif-parse extracts monetary amounts, merchants, card suffixes and
transaction types from Brazilian banking and payment app notifications,
using per-vendor rule sets with a generic fallback.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to notif-parse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages
			engine.SetLogger(Log)
			vendors.SetLogger(Log)
			extractors.SetLogger(Log)
			common.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Failed to load configuration, using defaults")
				cfg = &config.Config{}
			}
			Cfg = cfg

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)
