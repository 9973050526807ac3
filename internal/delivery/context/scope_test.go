package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_AssignsOnce(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "edge-123", want: true},
		{id: "", want: false},
		{id: "bad id", want: false},
		{id: "bad\tid", want: false},
		{id: "訂單", want: false},
		{id: strings.Repeat("a", maxRequestIDLength), want: true},
		{id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRequestID(tt.id))
		})
	}
}

func TestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, logger := Scope(context.Background(), "sweep-1", base, slog.String("kind", "expired"))
	logger.Info("done")

	assert.Equal(t, "sweep-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Contains(t, buf.String(), "request_id=sweep-1")
	assert.Contains(t, buf.String(), "kind=expired")
}

func TestOutsideScope(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Equal(t, "req-2", GetRequestIDFromContext(WithRequestID(context.Background(), "req-2")))
}

func TestCaller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCaller(c)
	assert.False(t, ok)

	caller := entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleVendor}}
	SetCaller(c, caller)

	got, ok := GetCaller(c)
	assert.True(t, ok)
	assert.Equal(t, caller, got)
}
