package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"ecocart/config"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	itemRepo    repository.ShoppingItemRepository
	dispatcher  service.ReminderDispatcher
	clock       service.Clock
	leadDays    int
	concurrency int
	logger      *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ItemRepo   repository.ShoppingItemRepository
	Dispatcher service.ReminderDispatcher
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReminderService creates a new reminder service instance
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		itemRepo:    params.ItemRepo,
		dispatcher:  params.Dispatcher,
		clock:       params.Clock,
		leadDays:    params.Config.Reminder.LeadDays,
		concurrency: max(params.Config.Reminder.DispatchConcurrency, 1),
		logger:      params.Logger,
	}
}

// Sweep claims reminders with one conditional update, so overlapping sweeps never
// claim the same item, then dispatches each claimed reminder independently.
// A failed dispatch is logged and counted; the claim stays.
func (s *reminderService) Sweep(ctx context.Context, kind entity.ReminderKind, now time.Time) (*entity.SweepResult, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown reminder kind")
	}

	started := time.Now()
	window := entity.WindowFor(kind, now, s.leadDays)

	claimed, err := s.itemRepo.ClaimReminders(ctx, window, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim %s reminders", kind)
	}

	var dispatched, failed atomic.Int64

	var group errgroup.Group
	group.SetLimit(s.concurrency)

	for _, reminder := range claimed {
		reminder.Kind = kind

		group.Go(func() error {
			if err := s.dispatcher.Dispatch(ctx, reminder); err != nil {
				failed.Add(1)
				s.logger.Warn("[Reminder] Dispatch failed",
					slog.String("kind", string(kind)),
					slog.String("item_id", reminder.ItemID.String()),
					slog.String("owner_id", reminder.OwnerID.String()),
					slog.Any("error", err),
				)

				return nil
			}
			dispatched.Add(1)

			return nil
		})
	}
	_ = group.Wait()

	result := &entity.SweepResult{
		Kind:       kind,
		Claimed:    len(claimed),
		Dispatched: int(dispatched.Load()),
		Failed:     int(failed.Load()),
		Duration:   time.Since(started),
	}

	s.logger.Info("[Reminder] Sweep completed",
		slog.String("kind", string(kind)),
		slog.Int("claimed", result.Claimed),
		slog.Int("dispatched", result.Dispatched),
		slog.Int("failed", result.Failed),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

// MarkAllRead flags the caller's reminders of kind without notifying.
func (s *reminderService) MarkAllRead(ctx context.Context, caller entity.Caller, kind entity.ReminderKind) (int, error) {
	if !kind.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown reminder kind")
	}

	window := entity.WindowFor(kind, s.clock.Now(), s.leadDays)

	claimed, err := s.itemRepo.ClaimReminders(ctx, window, &caller.UserID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to mark %s reminders read", kind)
	}

	return len(claimed), nil
}
