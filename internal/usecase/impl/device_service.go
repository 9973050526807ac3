package impl

import (
	"context"
	"log/slog"
	"strings"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      service.Clock
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, caller entity.Caller, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	token := strings.TrimSpace(info.FCMToken)
	installID := strings.TrimSpace(info.DeviceID)
	if token == "" || installID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	platform, ok := entity.ParsePlatform(info.Platform)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	device := &entity.UserDevice{
		UserID:     caller.UserID,
		DeviceID:   installID,
		Platform:   platform,
		FCMToken:   token,
		IsActive:   true,
		LastSeenAt: s.clock.Now(),
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	s.logger.Info("Device registered",
		slog.String("user_id", caller.UserID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("platform", string(platform)),
	)

	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, caller entity.Caller) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, caller.UserID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// UpdateFCMToken only touches devices of the caller; another user's device
// reads as not found.
func (s *deviceService) UpdateFCMToken(ctx context.Context, caller entity.Caller, deviceID uuid.UUID, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	return deviceError(s.deviceRepo.UpdateToken(ctx, caller.UserID, deviceID, token), "failed to update FCM token")
}

func (s *deviceService) DeactivateDevice(ctx context.Context, caller entity.Caller, deviceID uuid.UUID) error {
	return deviceError(s.deviceRepo.Deactivate(ctx, caller.UserID, deviceID), "failed to deactivate device")
}

func deviceError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrDeviceTokenTaken):
		return domainerrors.ErrDeviceTokenTaken
	default:
		return errors.Wrap(err, msg)
	}
}
