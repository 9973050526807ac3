package service

import (
	"context"

	"ecocart/internal/domain/entity"
)

// ReminderDispatcher hands a claimed reminder to the notification channel.
// Dispatch is best-effort: a returned error is logged by the caller and never
// undoes the claim.
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, reminder *entity.ClaimedReminder) error
}
