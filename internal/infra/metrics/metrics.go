// Package metrics exposes Prometheus collectors for the API and the expiration sweeps.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "ecocart"

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	itemsAdded   prometheus.Counter

	sweepClaimed    *prometheus.CounterVec
	sweepDispatched *prometheus.CounterVec
	sweepFailed     *prometheus.CounterVec
	sweepDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		itemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shopping",
			Name:      "items_added_total",
			Help:      "Add-item operations, merged or inserted.",
		}),
		sweepClaimed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "claimed_total",
			Help:      "Items claimed by expiration sweeps.",
		}, []string{"kind"}),
		sweepDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "dispatched_total",
			Help:      "Reminders handed to the notification channel.",
		}, []string{"kind"}),
		sweepFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "dispatch_failed_total",
			Help:      "Reminders whose dispatch failed after being claimed.",
		}, []string{"kind"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "sweep_duration_seconds",
			Help:      "Wall time of one expiration sweep.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.itemsAdded,
		m.sweepClaimed,
		m.sweepDispatched,
		m.sweepFailed,
		m.sweepDuration,
	)

	return m
}

// ObserveSweep records the outcome of one sweep run.
func (m *Metrics) ObserveSweep(result *entity.SweepResult) {
	if result == nil {
		return
	}

	kind := string(result.Kind)
	m.sweepClaimed.WithLabelValues(kind).Add(float64(result.Claimed))
	m.sweepDispatched.WithLabelValues(kind).Add(float64(result.Dispatched))
	m.sweepFailed.WithLabelValues(kind).Add(float64(result.Failed))
	m.sweepDuration.WithLabelValues(kind).Observe(result.Duration.Seconds())
}

// ItemAdded counts one successful add-item call.
func (m *Metrics) ItemAdded() {
	m.itemsAdded.Inc()
}

// Middleware counts requests per matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterDB exports connection pool statistics of db under the given name.
func (m *Metrics) RegisterDB(name string, db *sql.DB) error {
	return errors.WithStack(m.registry.Register(collectors.NewDBStatsCollector(db, name)))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
