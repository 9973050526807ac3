package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the client family a push token was issued for.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// ParsePlatform normalizes a client supplied platform name.
func ParsePlatform(raw string) (Platform, bool) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(raw))); p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is an app install that receives expiration reminders.
// An FCM token belongs to exactly one install, so re-registering a token
// moves it to the calling user.
type UserDevice struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	DeviceID   string    `json:"device_id"`
	Platform   Platform  `json:"platform"`
	FCMToken   string    `json:"-"`
	IsActive   bool      `json:"is_active"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
}
