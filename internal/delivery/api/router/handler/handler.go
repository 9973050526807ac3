// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"ecocart/internal/delivery/api/response"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// caller returns the authenticated caller or writes a 401.
func caller(c echo.Context) (entity.Caller, bool, error) {
	cl, ok := deliverycontext.GetCaller(c)
	if !ok {
		return entity.Caller{}, false, response.Unauthorized(c, "INVALID_TOKEN", "無法識別使用者身分")
	}

	return cl, true, nil
}

// pathID parses a uuid path parameter or writes a 400.
func pathID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "無效的 ID 格式")
	}

	return id, true, nil
}

// bindAndValidate binds the request body into req and validates it, writing a 400 on failure.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "請求格式錯誤")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
