package pubsub

import (
	"context"
	"time"

	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"

	"github.com/pkg/errors"
)

type reminderDispatcher struct {
	publisher service.EventPublisher
}

// NewReminderDispatcher hands claimed reminders to the push worker through the event publisher.
func NewReminderDispatcher(publisher service.EventPublisher) service.ReminderDispatcher {
	return &reminderDispatcher{publisher: publisher}
}

func (d *reminderDispatcher) Dispatch(ctx context.Context, reminder *entity.ClaimedReminder) error {
	if reminder == nil {
		return errors.New("nil reminder")
	}

	return d.publisher.PublishReminderEvent(ctx, ToReminderEvent(ctx, reminder))
}

// ToReminderEvent converts a claimed reminder to its wire form
func ToReminderEvent(ctx context.Context, reminder *entity.ClaimedReminder) *service.ReminderEvent {
	return &service.ReminderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		ItemID:         reminder.ItemID.String(),
		ListID:         reminder.ListID.String(),
		OwnerID:        reminder.OwnerID.String(),
		ProductName:    reminder.ProductName,
		ExpirationDate: reminder.ExpirationDate.Format(time.DateOnly),
		Kind:           string(reminder.Kind),
	}
}
