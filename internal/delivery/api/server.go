package api

import (
	"log/slog"

	"ecocart/config"
	"ecocart/internal/delivery"
	apimiddleware "ecocart/internal/delivery/api/middleware"
	"ecocart/internal/delivery/api/router"
	"ecocart/internal/delivery/api/validator"
	"ecocart/internal/delivery/httpserver"
	"ecocart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the public API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewServer builds the shopper and vendor facing API, served over h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	t := params.Cfg.HTTP.Timeouts

	return httpserver.New(params.Lc, newEcho(params), httpserver.Options{
		Name: "api",
		Port: params.Cfg.HTTP.Port,
		Timeouts: httpserver.Timeouts{
			Read:       t.ReadTimeout,
			ReadHeader: t.ReadHeaderTimeout,
			Write:      t.WriteTimeout,
			Idle:       t.IdleTimeout,
		},
		H2C: true,
	}, params.Logger), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := httpserver.NewEcho(params.Cfg, params.Logger)

	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.Use(params.Metrics.Middleware())
	}
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}
