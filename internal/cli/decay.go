package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"option-surface/internal/app"
)

var (
	decayAt     string
	decayExpiry string
	decaySteps  int
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Show the base-point value at evenly spaced times up to expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if decaySteps <= 0 {
			return fmt.Errorf("--steps must be greater than zero")
		}

		opts := app.DecayOptions{Steps: decaySteps}

		var err error
		if opts.ObservedAt, err = parseInstant("at", decayAt); err != nil {
			return err
		}
		if opts.Expiry, err = parseInstant("expiry", decayExpiry); err != nil {
			return err
		}

		_, err = getApp().Decay(cmd.Context(), opts)
		return err
	},
}

func init() {
	decayCmd.Flags().StringVar(&decayAt, "at", "", "First observation time (RFC3339 or YYYY-MM-DD, defaults to now)")
	decayCmd.Flags().StringVar(&decayExpiry, "expiry", "", "Expiry (RFC3339 or YYYY-MM-DD, defaults to config)")
	decayCmd.Flags().IntVar(&decaySteps, "steps", 10, "Number of intervals between observation and expiry")
}
