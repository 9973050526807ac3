package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderKind distinguishes the two expiration sweeps.
type ReminderKind string

const (
	// ReminderExpiring covers items expiring inside the lead window.
	ReminderExpiring ReminderKind = "expiring"
	// ReminderExpired covers items whose expiration date has passed.
	ReminderExpired ReminderKind = "expired"
)

// IsValid checks if the ReminderKind is a known value.
func (k ReminderKind) IsValid() bool {
	return k == ReminderExpiring || k == ReminderExpired
}

// ReminderWindow is the date range an expiration sweep selects.
// A nil From means unbounded below. Until is exclusive when Exclusive is set.
type ReminderWindow struct {
	From      *time.Time
	Until     time.Time
	Exclusive bool
}

// WindowFor computes the selection window of kind at now.
func WindowFor(kind ReminderKind, now time.Time, leadDays int) ReminderWindow {
	today := DateOf(now)
	if kind == ReminderExpired {
		return ReminderWindow{Until: today, Exclusive: true}
	}

	return ReminderWindow{From: &today, Until: today.AddDate(0, 0, leadDays)}
}

// Contains reports whether date lies inside the window.
func (w ReminderWindow) Contains(date time.Time) bool {
	d := DateOf(date)
	if w.From != nil && d.Before(*w.From) {
		return false
	}
	if w.Exclusive {
		return d.Before(w.Until)
	}

	return !d.After(w.Until)
}

// ClaimedReminder is an item whose reminder flag was flipped by a sweep,
// carrying what the dispatcher needs to notify the list owner.
type ClaimedReminder struct {
	ItemID         uuid.UUID
	ListID         uuid.UUID
	OwnerID        uuid.UUID
	ProductName    string
	ExpirationDate time.Time
	Kind           ReminderKind
}

// SweepResult summarises one sweep run.
type SweepResult struct {
	Kind       ReminderKind  `json:"kind"`
	Claimed    int           `json:"claimed"`
	Dispatched int           `json:"dispatched"`
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"duration"`
}

// ReminderLog records one push attempt for a reminder.
type ReminderLog struct {
	ID           uuid.UUID    `json:"id"`
	ItemID       uuid.UUID    `json:"item_id"`
	UserID       uuid.UUID    `json:"user_id"`
	DeviceID     uuid.UUID    `json:"device_id"`
	Kind         ReminderKind `json:"kind"`
	Status       string       `json:"status"`
	FCMMessageID string       `json:"fcm_message_id"`
	ErrorMessage string       `json:"error_message"`
	SentAt       time.Time    `json:"sent_at"`
}

const (
	ReminderStatusSent   = "sent"
	ReminderStatusFailed = "failed"
)
