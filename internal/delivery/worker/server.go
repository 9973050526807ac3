package worker

import (
	"log/slog"
	"net/http"

	"ecocart/config"
	"ecocart/internal/delivery"
	"ecocart/internal/delivery/httpserver"
	"ecocart/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushPath is where Pub/Sub delivers reminder events.
const PushPath = "/pubsub/push"

// ServerParams holds dependencies for the reminder worker
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint on the worker port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	return httpserver.New(params.Lc, newEcho(params), httpserver.Options{
		Name: "worker",
		Port: params.Cfg.Worker.Port,
	}, params.Logger), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := httpserver.NewEcho(params.Cfg, params.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush)

	return e
}
