package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"option-surface/internal/pricing"
)

// DecayPoint is the base-point value at one observation instant.
type DecayPoint struct {
	ObservedAt time.Time
	Years      float64
	Value      float64
}

// Decay values the configured base point at evenly spaced instants from the
// observation time up to expiry, showing how time value bleeds out.
func (a *App) Decay(ctx context.Context, opts DecayOptions) ([]DecayPoint, error) {
	if opts.Steps <= 0 {
		return nil, errors.New("steps must be greater than zero")
	}

	start := a.observationTime(opts.ObservedAt)
	expiry, err := a.resolveExpiry(start, opts.Expiry)
	if err != nil {
		return nil, err
	}

	instants, err := pricing.DateRange(start, expiry, opts.Steps)
	if err != nil {
		return nil, err
	}

	c, m := a.Config.Contract, a.Config.Market
	option, err := newContract(a.Config.IsPut(), c.Strike, c.Cost, expiry)
	if err != nil {
		return nil, err
	}

	points := make([]DecayPoint, 0, len(instants))
	for _, at := range instants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := valuePoint(a.Config.Valuation, option, m.Volatility, m.UnderlyingPrice, m.RiskFreeRate, at)
		if err != nil {
			return nil, err
		}
		points = append(points, DecayPoint{ObservedAt: at, Years: pricing.YearFraction(at, expiry), Value: value})
	}

	places := a.Config.Export.Decimals
	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Observed (UTC)\tYears\tValue")
	for _, p := range points {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			p.ObservedAt.UTC().Format(time.RFC3339),
			decimal.NewFromFloat(p.Years).StringFixed(places),
			decimal.NewFromFloat(p.Value).StringFixed(places),
		)
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}

	return points, nil
}
