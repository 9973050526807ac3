// Package delivery defines the long-running entry points of a binary.
package delivery

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Delivery is a server or background loop started by fx at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams collects every Delivery tagged group:"deliveries".
type StartParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves each delivery on its own goroutine once every OnStart hook has
// run. A delivery that fails takes the whole process down with exit code 1.
func Start(params StartParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go serve(ctx, d, params)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func serve(ctx context.Context, d Delivery, params StartParams) {
	err := d.Serve(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
	if err := params.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
		params.Logger.Error("Shutdown failed", slog.Any("error", err))
	}
}

// FxLogger sends fx lifecycle events to the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger}
}
