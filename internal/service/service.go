package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"option-surface/internal/config"
	"option-surface/internal/logging"
	"option-surface/internal/pricing"
	"option-surface/internal/report"
	"option-surface/internal/scheduler"
)

// SurfaceSink receives every surface the service values.
type SurfaceSink interface {
	WriteSurface(ctx context.Context, s *report.Surface) error
}

// Service values the configured shock grid, either once or on every scheduler tick.
type Service struct {
	scheduler *scheduler.Scheduler
	sink      SurfaceSink
	logger    zerolog.Logger

	contract config.ContractConfig
	grid     config.GridConfig
	rate     float64
	expiry   time.Time
}

// New constructs the valuation service. The expiry is fixed for the lifetime
// of the service so repeated ticks observe the same contract decaying.
func New(cfg *config.Config, expiry time.Time, sched *scheduler.Scheduler, sink SurfaceSink, logger zerolog.Logger) *Service {
	return &Service{
		scheduler: sched,
		sink:      sink,
		logger:    logging.Component(logger, "service"),
		contract:  cfg.Contract,
		grid:      cfg.Grid,
		rate:      cfg.Market.RiskFreeRate,
		expiry:    expiry,
	}
}

// Run begins the periodic revaluation loop.
func (s *Service) Run(ctx context.Context) error {
	if s.scheduler == nil {
		return fmt.Errorf("scheduler not configured")
	}
	return s.scheduler.Run(ctx, s.ProcessTick)
}

// ProcessTick values the grid as observed at the tick instant and forwards the
// surface to the sink.
func (s *Service) ProcessTick(ctx context.Context, at time.Time) error {
	surface, err := s.Surface(at)
	if err != nil {
		return err
	}

	centre := surface.Center()
	s.logger.Info().Time("observed_at", at).
		Float64("years_to_expiry", pricing.YearFraction(at, s.expiry)).
		Float64("price", centre.Price).
		Float64("volatility", centre.Volatility).
		Float64("value", centre.Value).
		Msg("surface valued")

	if s.sink != nil {
		if err := s.sink.WriteSurface(ctx, surface); err != nil {
			return fmt.Errorf("write surface: %w", err)
		}
	}
	return nil
}

// Surface builds and values the configured grid at observedAt.
func (s *Service) Surface(observedAt time.Time) (*report.Surface, error) {
	priceLimits, err := pricing.NewShockLimits(s.grid.PriceLimits.Down, s.grid.PriceLimits.Up, s.grid.PriceLimits.Steps)
	if err != nil {
		return nil, fmt.Errorf("price limits: %w", err)
	}
	volLimits, err := pricing.NewShockLimits(s.grid.VolatilityLimits.Down, s.grid.VolatilityLimits.Up, s.grid.VolatilityLimits.Steps)
	if err != nil {
		return nil, fmt.Errorf("volatility limits: %w", err)
	}

	grid, err := pricing.GenerateShockGrid(s.grid.BasePrice, priceLimits, s.grid.BaseVolatility, volLimits, pricing.WithWorkers(s.grid.Workers))
	if err != nil {
		return nil, fmt.Errorf("generate shock grid: %w", err)
	}

	kind := "call"
	var values pricing.Matrix
	if s.isPut() {
		kind = "put"
		put, err := pricing.NewPut(s.contract.Strike, s.expiry, s.contract.Cost)
		if err != nil {
			return nil, err
		}
		values, err = grid.ValuePutBlackScholes(put, s.rate, observedAt)
		if err != nil {
			return nil, fmt.Errorf("value grid: %w", err)
		}
	} else {
		call, err := pricing.NewCall(s.contract.Strike, s.expiry, s.contract.Cost)
		if err != nil {
			return nil, err
		}
		values, err = grid.ValueBlackScholes(call, s.rate, observedAt)
		if err != nil {
			return nil, fmt.Errorf("value grid: %w", err)
		}
	}

	s.logger.Debug().Int("rows", values.Rows()).Int("cols", values.Cols()).Msg("grid valued")

	return &report.Surface{
		Kind:         kind,
		Strike:       s.contract.Strike,
		Cost:         s.contract.Cost,
		Expiry:       s.expiry,
		ObservedAt:   observedAt,
		RiskFreeRate: s.rate,
		Prices:       grid.Prices(),
		Volatilities: grid.Volatilities(),
		Values:       values,
	}, nil
}

func (s *Service) isPut() bool {
	return strings.EqualFold(s.contract.Kind, "put")
}
