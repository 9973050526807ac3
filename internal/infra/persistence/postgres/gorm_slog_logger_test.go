package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ecocart/config"
	deliverycontext "ecocart/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	l.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT pg_sleep(1)", 1
	}, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugQueries(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Contains(t, verboseBuf.String(), `"msg":"GORM query"`)
}

func TestGormSlogLogger_ConstraintViolationIsWarning(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO supplier_listings ...", 0
	}, &pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key"})

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "GORM constraint violation")
	assert.Contains(t, buf.String(), `"sqlstate":"23505"`)
}

func TestGormSlogLogger_UsesScopedLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(false)
	scopedBuf := &bytes.Buffer{}
	ctx, _ := deliverycontext.Scope(context.Background(), "sweep-1",
		slog.New(slog.NewJSONHandler(scopedBuf, nil)), slog.String("kind", "expiring"))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE shopping_items ...", 0 }, errors.New("boom"))

	assert.Contains(t, scopedBuf.String(), `"kind":"expiring"`)
	assert.Contains(t, scopedBuf.String(), `"request_id":"sweep-1"`)
}
