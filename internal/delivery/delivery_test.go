package delivery

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type funcDelivery func(ctx context.Context) error

func (f funcDelivery) Serve(ctx context.Context) error { return f(ctx) }

func TestStart_FailingDeliveryShutsDown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fxtest.New(t,
		fx.Supply(logger),
		fx.Provide(
			fx.Annotate(
				func() Delivery {
					return funcDelivery(func(context.Context) error { return errors.New("bind: address in use") })
				},
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(Start),
	)
	app.RequireStart()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(time.Second):
		t.Fatal("expected shutdown")
	}
	app.RequireStop()
}

func TestStart_StopCancelsDeliveries(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	done := make(chan struct{})

	app := fxtest.New(t,
		fx.Supply(logger),
		fx.Provide(
			fx.Annotate(
				func() Delivery {
					return funcDelivery(func(ctx context.Context) error {
						<-ctx.Done()
						close(done)

						return ctx.Err()
					})
				},
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(Start),
	)
	app.RequireStart()
	require.NoError(t, app.Stop(context.Background()))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("delivery not cancelled")
	}
}
