package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSweep(t *testing.T) {
	m := New()

	m.ObserveSweep(&entity.SweepResult{
		Kind:       entity.ReminderExpiring,
		Claimed:    3,
		Dispatched: 2,
		Failed:     1,
		Duration:   150 * time.Millisecond,
	})
	m.ObserveSweep(nil)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweepClaimed.WithLabelValues("expiring")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweepDispatched.WithLabelValues("expiring")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepFailed.WithLabelValues("expiring")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.sweepClaimed.WithLabelValues("expired")))
}

func TestItemAdded(t *testing.T) {
	m := New()

	m.ItemAdded()
	m.ItemAdded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.itemsAdded))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/lists/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/abc", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/lists/:id", "GET", "204")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ecocart_http_requests_total"))
}
