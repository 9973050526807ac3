package pubsub

import (
	"context"
	"log/slog"

	"ecocart/config"
	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher is used when no provider is configured. Sweeps still
// claim reminders; they are only logged.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p disabledPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	p.logger.Debug("[PubSub] Publishing disabled, dropping reminder",
		slog.String("item_id", event.ItemID),
		slog.String("kind", event.Kind),
	)

	return nil
}

func (disabledPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, reminders will only be logged")

		return disabledPublisher{logger: params.Logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := validatePubSub(cfg); err != nil {
		return nil, err
	}

	logger = logger.With(slog.String("provider", cfg.Provider))
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing reminders to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalPublisher(cfg.LocalEndpoint, logger), nil
	}

	logger.Info("Publishing reminders to Cloud Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePublisher(ctx, cfg, logger)
}

func validatePubSub(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewEventPublisher,
		NewReminderDispatcher,
	),
)
