package middleware

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	deliverycontext "ecocart/internal/delivery/context"
	domainerrors "ecocart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler. Domain errors keep their
// code and message, echo errors (404 route, 405, 413 body limit) become
// HTTP_ERROR, and anything else is logged and hidden behind a 500.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}
		_ = response.AppError(c, appErr)

	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		m.logFailure(c, err)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "系統內部錯誤，請稍後再試")
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
		slog.Any("error", err),
	)
}
