package service

import (
	"context"
)

// Push is one notification fanned out to a user's devices.
type Push struct {
	Title string
	Body  string
	Data  map[string]string
	// CollapseKey lets a newer push replace an undelivered one with the same key.
	CollapseKey string
}

// PushOutcome is the provider's verdict for one token.
type PushOutcome struct {
	Token     string
	MessageID string
	Err       error
	// Rejected tokens will never be accepted again and should be retired.
	Rejected bool
}

// NotificationService sends pushes to device tokens.
type NotificationService interface {
	// Multicast sends push to at most constants.MaxFCMBatchSize tokens and
	// reports one outcome per token, in the order given. A returned error means
	// nothing was sent.
	Multicast(ctx context.Context, tokens []string, push *Push) ([]PushOutcome, error)
}
