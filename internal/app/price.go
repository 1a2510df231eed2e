package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"option-surface/internal/pricing"
)

// Price values the configured contract at a single market point and prints it.
func (a *App) Price(ctx context.Context, opts PriceOptions) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	observedAt := a.observationTime(opts.ObservedAt)
	expiry, err := a.resolveExpiry(observedAt, opts.Expiry)
	if err != nil {
		return 0, err
	}

	market := a.Config.Market
	strike := valueOr(opts.Strike, a.Config.Contract.Strike)
	cost := valueOr(opts.Cost, a.Config.Contract.Cost)
	put := valueOr(opts.Put, a.Config.IsPut())
	point := opts.Scenario.Apply(pricing.MarketPoint{
		UnderlyingPrice: valueOr(opts.UnderlyingPrice, market.UnderlyingPrice),
		Volatility:      valueOr(opts.Volatility, market.Volatility),
		RiskFreeRate:    valueOr(opts.RiskFreeRate, market.RiskFreeRate),
		ObservedAt:      observedAt,
	})
	spot, vol, rate := point.UnderlyingPrice, point.Volatility, point.RiskFreeRate
	observedAt = point.ObservedAt

	valuation := a.Config.Valuation
	if opts.Method != "" {
		valuation.Method = opts.Method
	}
	valuation.TreeSteps = valueOr(opts.TreeSteps, valuation.TreeSteps)
	valuation.MonteCarlo.Paths = valueOr(opts.MCPaths, valuation.MonteCarlo.Paths)
	valuation.MonteCarlo.Steps = valueOr(opts.MCSteps, valuation.MonteCarlo.Steps)
	valuation.MonteCarlo.Seed = valueOr(opts.MCSeed, valuation.MonteCarlo.Seed)

	option, err := newContract(put, strike, cost, expiry)
	if err != nil {
		return 0, err
	}
	value, err := valuePoint(valuation, option, vol, spot, rate, observedAt)
	if err != nil {
		return 0, err
	}

	kind := "call"
	if put {
		kind = "put"
	}
	a.Logger.Debug().Str("kind", kind).
		Str("method", valuation.Method).
		Float64("strike", strike).
		Float64("underlying_price", spot).
		Float64("volatility", vol).
		Float64("risk_free_rate", rate).
		Time("expiry", expiry).
		Time("observed_at", observedAt).
		Bool("shocked", !opts.Scenario.IsZero()).
		Float64("value", value).
		Msg("priced contract")

	fmt.Fprintf(a.Out, "%s K=%s expiry=%s observed=%s method=%s value=%s\n",
		kind,
		decimal.NewFromFloat(strike).String(),
		expiry.UTC().Format(time.RFC3339),
		observedAt.UTC().Format(time.RFC3339),
		valuation.Method,
		decimal.NewFromFloat(value).StringFixed(a.Config.Export.Decimals),
	)
	return value, nil
}

func valueOr[T any](override *T, fallback T) T {
	if override != nil {
		return *override
	}
	return fallback
}
