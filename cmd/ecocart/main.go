package main

import (
	"context"

	"ecocart/config"
	"ecocart/internal/delivery"
	"ecocart/internal/delivery/api"
	"ecocart/internal/delivery/api/middleware"
	"ecocart/internal/delivery/api/router/handler"
	"ecocart/internal/delivery/scheduler"
	"ecocart/internal/infra/auth"
	"ecocart/internal/infra/clock"
	logs "ecocart/internal/infra/log"
	"ecocart/internal/infra/metrics"
	"ecocart/internal/infra/persistence/postgres"
	"ecocart/internal/infra/pubsub"
	"ecocart/internal/infra/qrcode"
	"ecocart/internal/infra/storage"
	"ecocart/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.WithLogger(delivery.FxLogger),
		fx.Invoke(delivery.Start),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
		storage.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			clock.NewSystemClock,
			func(cfg *config.Config) *config.QRCodeConfig {
				return cfg.QRCode
			},
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPricingService,
			impl.NewIdentityService,
			impl.NewCatalogService,
			impl.NewOfferService,
			impl.NewListService,
			impl.NewItemService,
			impl.NewReminderService,
			impl.NewRecommendationService,
			impl.NewDashboardService,
			impl.NewContactService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewOfferHandler,
			handler.NewListHandler,
			handler.NewItemHandler,
			handler.NewInsightHandler,
			handler.NewContactHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
