package app

import (
	"context"

	"option-surface/internal/report"
)

// Grid values the configured shock grid, prints a summary and writes the
// requested CSV and PNG outputs.
func (a *App) Grid(ctx context.Context, opts GridOptions) (*report.Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	observedAt := a.observationTime(opts.ObservedAt)
	expiry, err := a.resolveExpiry(observedAt, opts.Expiry)
	if err != nil {
		return nil, err
	}

	surface, err := a.newService(expiry, nil, nil).Surface(observedAt)
	if err != nil {
		return nil, err
	}

	places := a.Config.Export.Decimals
	if !opts.Quiet {
		if err := report.WriteSummary(a.Out, surface, places); err != nil {
			return nil, err
		}
	}

	if opts.CSVPath != "" {
		if err := report.SaveCSV(opts.CSVPath, surface, places); err != nil {
			return nil, err
		}
		a.Logger.Info().Str("path", opts.CSVPath).Msg("wrote surface csv")
	}

	if opts.PNGPath != "" {
		chartOpts := report.ChartOptions{
			Width:  a.Config.Export.Width,
			Height: a.Config.Export.Height,
			Slices: a.Config.Export.Slices,
		}
		if err := report.SavePNG(opts.PNGPath, surface, chartOpts); err != nil {
			return nil, err
		}
		a.Logger.Info().Str("path", opts.PNGPath).Msg("wrote surface chart")
	}

	return surface, nil
}
