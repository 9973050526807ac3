package usecase

import (
	"context"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what an app install reports when it registers for pushes.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages where expiration reminders are pushed.
type DeviceUsecase interface {
	// RegisterDevice binds the token to the caller, replacing any earlier token of the same install.
	RegisterDevice(ctx context.Context, caller entity.Caller, info *DeviceInfo) (*entity.UserDevice, error)

	// ListDevices returns all devices of the caller, including deactivated ones.
	ListDevices(ctx context.Context, caller entity.Caller) ([]*entity.UserDevice, error)

	// UpdateFCMToken rotates the token of one of the caller's devices.
	UpdateFCMToken(ctx context.Context, caller entity.Caller, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice stops reminders to one of the caller's devices.
	DeactivateDevice(ctx context.Context, caller entity.Caller, deviceID uuid.UUID) error
}
