// Package scheduler runs the periodic expiration sweeps.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"ecocart/config"
	"ecocart/internal/delivery"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"
	"ecocart/internal/infra/metrics"
	"ecocart/internal/usecase"
	"ecocart/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type sweepScheduler struct {
	cfg        *config.ReminderConfig
	reminderUC usecase.ReminderUsecase
	clock      service.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// Params holds dependencies for the sweep scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	ReminderUC usecase.ReminderUsecase
	Clock      service.Clock
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// New creates the delivery that triggers expiring and expired sweeps on their own intervals.
func New(params Params) delivery.Delivery {
	s := newScheduler(params.Cfg.Reminder, params.ReminderUC, params.Clock, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

func newScheduler(
	cfg *config.ReminderConfig,
	reminderUC usecase.ReminderUsecase,
	clock service.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *sweepScheduler {
	return &sweepScheduler{
		cfg:        cfg,
		reminderUC: reminderUC,
		clock:      clock,
		metrics:    m,
		logger:     logger,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Serve blocks until the scheduler is stopped or ctx is cancelled.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.cfg == nil || !s.cfg.Enabled {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("Starting reminder scheduler",
		slog.String("expiring_interval", util.FormatDuration(s.cfg.Interval)),
		slog.String("expired_interval", util.FormatDuration(s.cfg.ExpiredInterval)),
		slog.Bool("run_on_start", s.cfg.RunOnStart),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.loop(gctx, entity.ReminderExpiring, s.cfg.Interval)

		return nil
	})
	g.Go(func() error {
		s.loop(gctx, entity.ReminderExpired, s.cfg.ExpiredInterval)

		return nil
	})

	return g.Wait()
}

func (s *sweepScheduler) loop(ctx context.Context, kind entity.ReminderKind, interval time.Duration) {
	if s.cfg.RunOnStart {
		s.runSweep(ctx, kind)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runSweep(ctx, kind)
		}
	}
}

// runSweep performs one sweep; failures are logged and the next tick retries.
func (s *sweepScheduler) runSweep(ctx context.Context, kind entity.ReminderKind) {
	ctx, logger := deliverycontext.Scope(ctx, deliverycontext.NewRequestID(), s.logger,
		slog.String("kind", string(kind)))

	result, err := s.reminderUC.Sweep(ctx, kind, s.clock.Now())
	if err != nil {
		logger.Error("Reminder sweep failed", slog.Any("error", err))

		return
	}

	s.metrics.ObserveSweep(result)
}

func (s *sweepScheduler) shutdown(ctx context.Context) error {
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
		s.logger.Warn("Reminder scheduler did not stop in time")
	}

	return nil
}
