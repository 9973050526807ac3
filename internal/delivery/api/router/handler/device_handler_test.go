package handler

import (
	"net/http"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(deviceUC *mockUsecase.MockDeviceUsecase, cl entity.Caller)
		wantCode   int
	}{
		{
			name: "registered",
			body: `{"fcm_token":"tok-1","device_id":"pixel-8","platform":"android"}`,
			setupMocks: func(deviceUC *mockUsecase.MockDeviceUsecase, cl entity.Caller) {
				deviceUC.EXPECT().RegisterDevice(mock.Anything, cl, &usecase.DeviceInfo{
					FCMToken: "tok-1",
					DeviceID: "pixel-8",
					Platform: "android",
				}).Return(&entity.UserDevice{ID: uuid.New(), UserID: cl.UserID, FCMToken: "tok-1"}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown platform",
			body:     `{"fcm_token":"tok-1","device_id":"pixel-8","platform":"symbian"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing token",
			body:     `{"device_id":"pixel-8","platform":"ios"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceUC := mockUsecase.NewMockDeviceUsecase(t)
			h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})
			cl := shopper()
			if tt.setupMocks != nil {
				tt.setupMocks(deviceUC, *cl)
			}

			c, rec := newContext(http.MethodPost, "/", tt.body, cl)
			require.NoError(t, h.RegisterDevice(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotContains(t, rec.Body.String(), "tok-1")
		})
	}
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})
	cl := shopper()
	deviceID := uuid.New()

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, *cl, deviceID).Return(domainerrors.ErrDeviceNotFound).Once()

	c, rec := newContext(http.MethodDelete, "/", "", cl)
	require.NoError(t, h.DeactivateDevice(withParam(c, "id", deviceID.String())))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})
	cl := shopper()
	deviceID := uuid.New()

	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, *cl, deviceID, "tok-2").Return(nil).Once()

	c, rec := newContext(http.MethodPut, "/", `{"fcm_token":"tok-2"}`, cl)
	require.NoError(t, h.UpdateFCMToken(withParam(c, "id", deviceID.String())))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
