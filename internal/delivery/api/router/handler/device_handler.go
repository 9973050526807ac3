package handler

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push targets of the calling user. Tokens are
// accepted on the way in and never rendered on the way out.
type DeviceHandler struct {
	devices usecase.DeviceUsecase
	logger  *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{devices: params.DeviceUC, logger: params.Logger}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

type refreshTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
}

// RegisterDevice POST /devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}
	var req registerDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	info := &usecase.DeviceInfo{FCMToken: req.FCMToken, DeviceID: req.DeviceID, Platform: req.Platform}
	device, err := h.devices.RegisterDevice(c.Request().Context(), cl, info)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices GET /devices, inactive devices included.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	devices, err := h.devices.ListDevices(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken PUT /devices/:id swaps the token and reactivates the device.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req refreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.devices.UpdateFCMToken(c.Request().Context(), cl, id, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeactivateDevice DELETE /devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.devices.DeactivateDevice(c.Request().Context(), cl, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
