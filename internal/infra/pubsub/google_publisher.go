package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"ecocart/config"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePublisher publishes reminders to a Cloud Pub/Sub topic. The topic
// must exist; it is looked up once so a typo fails at boot.
func NewGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topic)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishReminderEvent blocks until the server acknowledged the message.
func (p *googlePublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.topic)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[PubSub] Reminder published",
		slog.String("item_id", event.ItemID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
