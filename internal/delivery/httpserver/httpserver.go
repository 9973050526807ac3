// Package httpserver runs an echo instance as a Delivery bound to the fx lifecycle.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"ecocart/config"
	"ecocart/internal/delivery"
	"ecocart/internal/delivery/middleware"
	"ecocart/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// Timeouts are applied to the underlying http.Server. Zero values leave net/http defaults.
type Timeouts struct {
	Read       time.Duration
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
}

// Options describe one listener.
type Options struct {
	Name     string
	Port     int
	Timeouts Timeouts
	// H2C serves cleartext HTTP/2 alongside HTTP/1.1.
	H2C bool
}

type server struct {
	opts   Options
	echo   *echo.Echo
	logger *slog.Logger
}

// NewEcho returns an echo instance carrying the middleware every listener shares:
// panic recovery, request id scoping and access logging.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// New wraps e as a Delivery and registers graceful shutdown on lc.
func New(lc fx.Lifecycle, e *echo.Echo, opts Options, logger *slog.Logger) delivery.Delivery {
	t := opts.Timeouts
	e.Server.ReadTimeout = t.Read
	e.Server.ReadHeaderTimeout = t.ReadHeader
	e.Server.WriteTimeout = t.Write
	e.Server.IdleTimeout = t.Idle

	s := &server{
		opts:   opts,
		echo:   e,
		logger: logger.With(slog.String("server", opts.Name)),
	}
	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

func (s *server) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.opts.Port))
	s.logger.Info("HTTP server listening", slog.String("addr", addr), slog.Bool("h2c", s.opts.H2C))

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(addr, &http2.Server{IdleTimeout: s.opts.Timeouts.Idle})
	} else {
		err = s.echo.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.opts.Name)
	}

	return nil
}

func (s *server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
