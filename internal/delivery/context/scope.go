// Package context carries request-scoped values between echo handlers,
// services and background jobs.
package context

import (
	"context"
	"log/slog"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header that carries a request id across hops.
const HeaderXRequestID = echo.HeaderXRequestID

const maxRequestIDLength = 128

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// echo.Context keys
const (
	echoRequestIDKey = "ecocart.request_id"
	echoCallerKey    = "ecocart.caller"
)

// NewRequestID returns a time-ordered id so sweeps and requests sort in logs.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// ValidRequestID accepts short printable ASCII ids from upstream proxies and publishers.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// Scope attaches requestID and a logger tagged with it to ctx.
// Extra attrs are added to the returned logger only.
func Scope(ctx context.Context, requestID string, base *slog.Logger, attrs ...any) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)

	return ctx, logger
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "" outside a scope.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLoggerOrDefault returns the scoped logger of ctx, or fallback outside a scope.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request id of c. Requests that skipped the
// request id middleware get one assigned on first use.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	id := NewRequestID()
	SetRequestID(c, id)

	return id
}

// SetCaller stores the authenticated caller on the echo context.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(echoCallerKey, caller)
}

// GetCaller returns the authenticated caller of c.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(echoCallerKey).(entity.Caller)

	return caller, ok
}
