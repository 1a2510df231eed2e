package cli

import (
	"github.com/spf13/cobra"

	"option-surface/internal/app"
)

var (
	gridAt      string
	gridExpiry  string
	gridCSVPath string
	gridPNGPath string
	gridQuiet   bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Value the shock grid and export it as CSV and/or PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.GridOptions{
			CSVPath: gridCSVPath,
			PNGPath: gridPNGPath,
			Quiet:   gridQuiet,
		}

		var err error
		if opts.ObservedAt, err = parseInstant("at", gridAt); err != nil {
			return err
		}
		if opts.Expiry, err = parseInstant("expiry", gridExpiry); err != nil {
			return err
		}

		_, err = getApp().Grid(cmd.Context(), opts)
		return err
	},
}

func init() {
	gridCmd.Flags().StringVar(&gridAt, "at", "", "Observation time (RFC3339 or YYYY-MM-DD, defaults to now)")
	gridCmd.Flags().StringVar(&gridExpiry, "expiry", "", "Expiry (RFC3339 or YYYY-MM-DD, defaults to config)")
	gridCmd.Flags().StringVar(&gridCSVPath, "csv", "", "Path to write the value matrix as CSV")
	gridCmd.Flags().StringVar(&gridPNGPath, "png", "", "Path to write a PNG chart of volatility slices")
	gridCmd.Flags().BoolVar(&gridQuiet, "quiet", false, "Skip the summary table")
}
