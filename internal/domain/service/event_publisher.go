package service

import (
	"context"
)

// ReminderEvent is one expiration reminder handed to the push worker.
type ReminderEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	ItemID         string `json:"item_id"`
	ListID         string `json:"list_id"`
	OwnerID        string `json:"owner_id"`
	ProductName    string `json:"product_name"`
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD
	Kind           string `json:"kind"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder event for async delivery
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
