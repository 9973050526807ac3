package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/reminders-push"
	localPublishTimeout = 30 * time.Second
)

// localPublisher stands in for a push subscription during development by
// POSTing the same envelope straight to the reminder worker.
type localPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalPublisher posts reminders to the worker at endpoint.
func NewLocalPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func (p *localPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var msg PushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC()

	body, err := json.Marshal(&msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "worker unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("worker answered %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[LocalPubSub] Reminder delivered to worker",
		slog.String("item_id", event.ItemID),
		slog.String("message_id", msg.Message.MessageID),
	)

	return nil
}

func (p *localPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
