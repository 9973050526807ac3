// Command reminderworker receives reminder events pushed by Pub/Sub and
// fans them out to the owner's devices through Firebase Cloud Messaging.
package main

import (
	"context"
	"log/slog"

	"ecocart/config"
	"ecocart/internal/delivery"
	"ecocart/internal/delivery/worker"
	"ecocart/internal/delivery/worker/handler"
	"ecocart/internal/domain/service"
	"ecocart/internal/infra/clock"
	logs "ecocart/internal/infra/log"
	"ecocart/internal/infra/notification"
	"ecocart/internal/infra/persistence/postgres"
	"ecocart/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.NewSystemClock,
			newNotificationService,
		),
		fx.Provide(
			postgres.New,
			postgres.NewDeviceRepository,
			postgres.NewReminderLogRepository,
		),
		fx.Provide(
			impl.NewReminderDeliveryService,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.WithLogger(delivery.FxLogger),
		fx.Invoke(delivery.Start),
	).Run()
}

// newNotificationService yields a nil service without Firebase credentials.
// Reminders are then logged and acknowledged without a push.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials missing, push is disabled")

		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "firebase")
	}

	return svc, nil
}
