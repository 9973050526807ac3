package impl

import (
	"context"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	mockRepo "ecocart/internal/mocks/repository"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Clock:      fixedClock{now: referenceNow},
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	caller := entity.Caller{UserID: uuid.New()}

	tests := []struct {
		name       string
		info       *usecase.DeviceInfo
		setupMocks func(f deviceServiceFixtures)
		wantErr    error
	}{
		{
			name: "normalizes and upserts",
			info: &usecase.DeviceInfo{FCMToken: " tok-1 ", DeviceID: "pixel-8", Platform: "Android"},
			setupMocks: func(f deviceServiceFixtures) {
				f.deviceRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
					return d.UserID == caller.UserID &&
						d.FCMToken == "tok-1" &&
						d.Platform == entity.PlatformAndroid &&
						d.IsActive &&
						d.LastSeenAt.Equal(referenceNow)
				})).RunAndReturn(func(_ context.Context, d *entity.UserDevice) error {
					d.ID = uuid.New()

					return nil
				}).Once()
			},
		},
		{
			name:    "missing token",
			info:    &usecase.DeviceInfo{DeviceID: "pixel-8", Platform: "ios"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown platform",
			info:    &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "user row missing",
			info: &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"},
			setupMocks: func(f deviceServiceFixtures) {
				f.deviceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(repository.ErrUserNotFound).Once()
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDeviceService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(f)
			}

			device, err := f.service.RegisterDevice(ctx, caller, tt.info)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, device.ID)
		})
	}
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("database error")).Once()

	_, err := f.service.RegisterDevice(ctx, entity.Caller{UserID: uuid.New()},
		&usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register device")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	caller := entity.Caller{UserID: uuid.New()}
	deviceID := uuid.New()

	t.Run("foreign device reads as missing", func(t *testing.T) {
		f := createTestDeviceService(t)
		f.deviceRepo.EXPECT().UpdateToken(ctx, caller.UserID, deviceID, "tok-2").Return(repository.ErrDeviceNotFound).Once()

		err := f.service.UpdateFCMToken(ctx, caller, deviceID, "tok-2")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("token taken", func(t *testing.T) {
		f := createTestDeviceService(t)
		f.deviceRepo.EXPECT().UpdateToken(ctx, caller.UserID, deviceID, "tok-2").Return(repository.ErrDeviceTokenTaken).Once()

		err := f.service.UpdateFCMToken(ctx, caller, deviceID, "tok-2")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenTaken)
	})

	t.Run("blank token", func(t *testing.T) {
		f := createTestDeviceService(t)

		err := f.service.UpdateFCMToken(ctx, caller, deviceID, "  ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()
	caller := entity.Caller{UserID: uuid.New()}
	deviceID := uuid.New()

	f.deviceRepo.EXPECT().Deactivate(ctx, caller.UserID, deviceID).Return(nil).Once()

	require.NoError(t, f.service.DeactivateDevice(ctx, caller, deviceID))
}

func TestDeviceService_ListDevices(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()
	caller := entity.Caller{UserID: uuid.New()}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: caller.UserID, IsActive: true},
		{ID: uuid.New(), UserID: caller.UserID},
	}

	f.deviceRepo.EXPECT().ListByUser(ctx, caller.UserID, false).Return(devices, nil).Once()

	got, err := f.service.ListDevices(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
