package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"option-surface/internal/app"
	"option-surface/internal/config"
	"option-surface/internal/logging"
	"option-surface/internal/pricing"
)

var (
	cfgFile   string
	logLevel  string
	appHandle *app.App
)

var rootCmd = &cobra.Command{
	Use:   "shockgrid",
	Short: "Value European options and Black-Scholes shock grids",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appHandle != nil {
			return nil
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if logLevel != "" {
			if _, err := logging.ParseLevel(logLevel); err != nil {
				return err
			}
			cfg.Logging.Level = logLevel
		}

		logger := logging.NewLogger(cfg.Logging)
		appHandle = app.NewApp(cfg, logger)
		appHandle.Out = cmd.OutOrStdout()
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level defined in config")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func getApp() *app.App {
	if appHandle == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return appHandle
}

// parseInstant accepts RFC3339 timestamps or bare YYYY-MM-DD dates (UTC midnight).
func parseInstant(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := pricing.ParseExpiry(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value: %w", flag, err)
	}
	return &t, nil
}
