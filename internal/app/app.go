package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"option-surface/internal/config"
	"option-surface/internal/logging"
	"option-surface/internal/pricing"
	"option-surface/internal/scheduler"
	"option-surface/internal/service"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer

	now func() time.Time
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config: cfg,
		Logger: logging.Component(logger, "app"),
		Out:    os.Stdout,
		now:    time.Now,
	}
}

// PriceOptions hold per-invocation overrides for a single valuation. Nil fields
// fall back to configuration.
type PriceOptions struct {
	ObservedAt      *time.Time
	Expiry          *time.Time
	Strike          *float64
	Cost            *float64
	UnderlyingPrice *float64
	Volatility      *float64
	RiskFreeRate    *float64
	Put             *bool

	// Method is bs, tree or mc; empty means valuation.method.
	Method    string
	TreeSteps *int
	MCPaths   *int
	MCSteps   *int
	MCSeed    *uint64

	// Scenario shocks the market inputs after overrides are applied.
	Scenario pricing.Scenario
}

// GridOptions configure the grid command.
type GridOptions struct {
	ObservedAt *time.Time
	Expiry     *time.Time
	CSVPath    string
	PNGPath    string
	Quiet      bool
}

// DecayOptions configure the decay command.
type DecayOptions struct {
	ObservedAt *time.Time
	Expiry     *time.Time
	Steps      int
}

func (a *App) observationTime(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return a.now().UTC()
}

func (a *App) resolveExpiry(observedAt time.Time, override *time.Time) (time.Time, error) {
	if override != nil {
		return *override, nil
	}
	expiry, err := a.Config.ResolveExpiry(observedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolve expiry: %w", err)
	}
	return expiry, nil
}

func (a *App) newService(expiry time.Time, sched *scheduler.Scheduler, sink service.SurfaceSink) *service.Service {
	return service.New(a.Config, expiry, sched, sink, a.Logger)
}

func newContract(put bool, strike, cost float64, expiry time.Time) (pricing.Contract, error) {
	if put {
		return pricing.NewPut(strike, expiry, cost)
	}
	return pricing.NewCall(strike, expiry, cost)
}

// valuePoint prices option at one market point with the selected method.
func valuePoint(v config.ValuationConfig, option pricing.Contract, vol, spot, rate float64, observedAt time.Time) (float64, error) {
	switch v.Method {
	case config.MethodTree:
		return pricing.PriceBinomialTree(option, vol, spot, rate, observedAt, v.TreeSteps)
	case config.MethodMonteCarlo:
		params := pricing.MonteCarloParams{Paths: v.MonteCarlo.Paths, Steps: v.MonteCarlo.Steps, Seed: v.MonteCarlo.Seed}
		return pricing.PriceMonteCarlo(option, vol, spot, rate, observedAt, params)
	case config.MethodBlackScholes, "":
		switch o := option.(type) {
		case pricing.Call:
			return pricing.PriceBlackScholes(o, vol, spot, rate, observedAt)
		case pricing.Put:
			return pricing.PricePutBlackScholes(o, vol, spot, rate, observedAt)
		}
		return 0, fmt.Errorf("unsupported contract %T", option)
	default:
		return 0, fmt.Errorf("unknown valuation method %q", v.Method)
	}
}
