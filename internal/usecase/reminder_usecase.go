package usecase

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"
)

// ReminderUsecase runs expiration sweeps.
type ReminderUsecase interface {
	// Sweep claims every unflagged item in the window of kind at now and dispatches a reminder for each.
	Sweep(ctx context.Context, kind entity.ReminderKind, now time.Time) (*entity.SweepResult, error)

	// MarkAllRead flags the caller's items in the window without notifying and returns how many were flagged.
	MarkAllRead(ctx context.Context, caller entity.Caller, kind entity.ReminderKind) (int, error)
}

// ReminderDeliveryResult summarises one pushed reminder.
type ReminderDeliveryResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// ReminderDeliveryUsecase pushes a reminder event to the owner's devices.
type ReminderDeliveryUsecase interface {
	DeliverReminder(ctx context.Context, event *service.ReminderEvent) (*ReminderDeliveryResult, error)
}
