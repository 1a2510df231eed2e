package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"option-surface/internal/report"
	"option-surface/internal/scheduler"
	"option-surface/internal/service"
)

// Watch revalues the configured grid on every scheduler tick until interrupted.
func (a *App) Watch(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := a.now().UTC()
	expiry, err := a.resolveExpiry(start, nil)
	if err != nil {
		return err
	}

	sched, err := scheduler.New(scheduler.Options{
		Interval:     a.Config.Watch.Interval,
		AlignToStart: a.Config.Watch.AlignToBucket,
		StartupDelay: a.Config.Watch.StartupDelay,
	}, a.Logger)
	if err != nil {
		return err
	}

	var sink service.SurfaceSink
	if path := a.Config.Watch.CSVPath; path != "" {
		sink = report.CSVSink{Path: path, Places: a.Config.Export.Decimals}
	} else {
		a.Logger.Warn().Msg("watch.csv_path not configured; surfaces are logged only")
	}

	svc := a.newService(expiry, sched, sink)

	a.Logger.Info().Time("expiry", expiry).Dur("interval", a.Config.Watch.Interval).Msg("starting revaluation loop")
	err = svc.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("revaluation loop terminated with error")
		return err
	}

	a.Logger.Info().Msg("revaluation loop stopped")
	return nil
}
