package repository

import (
	"context"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when no device of the user matches.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceTokenTaken is returned when a token update collides with another install.
	ErrDeviceTokenTaken = errors.New("fcm token belongs to another device")
)

// DeviceRepository stores the push endpoints of users.
type DeviceRepository interface {
	// Upsert registers device under its FCM token. A previous token of the same
	// install is dropped and the stored row is written back into device.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// ListByUser returns the user's devices, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)

	// UpdateToken replaces the token of a device owned by userID and reactivates it.
	UpdateToken(ctx context.Context, userID, id uuid.UUID, fcmToken string) error

	// Deactivate stops reminders to a device owned by userID.
	Deactivate(ctx context.Context, userID, id uuid.UUID) error

	// DeactivateTokens disables every device whose token FCM rejected.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)
}
