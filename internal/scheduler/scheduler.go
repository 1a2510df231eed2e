package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"option-surface/internal/logging"
)

// TickFunc revalues at the instant of one tick.
type TickFunc func(ctx context.Context, at time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Interval     time.Duration
	AlignToStart bool
	StartupDelay time.Duration
	// Clock overrides time.Now, mainly for tests.
	Clock func() time.Time
}

// Scheduler fires a TickFunc on every interval, optionally aligned to
// interval boundaries (e.g. the top of each minute).
type Scheduler struct {
	opts   Options
	logger zerolog.Logger
}

// New constructs a Scheduler instance.
func New(opts Options, logger zerolog.Logger) (*Scheduler, error) {
	if opts.Interval <= 0 {
		return nil, errors.New("scheduler interval must be positive")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Scheduler{opts: opts, logger: logging.Component(logger, "scheduler")}, nil
}

// Run blocks, invoking tick at each interval until ctx is cancelled. A failing
// tick is logged and does not stop the loop.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) error {
	if s.opts.StartupDelay > 0 {
		if err := s.sleep(ctx, s.opts.StartupDelay); err != nil {
			return err
		}
	}

	next := s.NextTick(s.now())
	for {
		delay := next.Sub(s.now())
		if delay < 0 {
			next = s.NextTick(s.now())
			delay = next.Sub(s.now())
		}

		s.logger.Debug().Time("next_tick", next).Msg("waiting for next tick")
		if err := s.sleep(ctx, delay); err != nil {
			return err
		}

		at := s.TickTime(next)
		s.logger.Debug().Time("tick", at).Msg("executing scheduled revaluation")
		if err := tick(ctx, at); err != nil {
			s.logger.Error().Err(err).Time("tick", at).Msg("revaluation failed")
		}

		next = next.Add(s.opts.Interval)
	}
}

// NextTick returns the first tick strictly after now.
func (s *Scheduler) NextTick(now time.Time) time.Time {
	if !s.opts.AlignToStart {
		return now.Add(s.opts.Interval)
	}
	next := now.Truncate(s.opts.Interval)
	if !next.After(now) {
		next = next.Add(s.opts.Interval)
	}
	return next
}

// TickTime is the observation instant handed to the tick function.
func (s *Scheduler) TickTime(t time.Time) time.Time {
	if !s.opts.AlignToStart {
		return t.UTC()
	}
	return t.Truncate(s.opts.Interval).UTC()
}

func (s *Scheduler) now() time.Time {
	return s.opts.Clock().UTC()
}

func (s *Scheduler) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
