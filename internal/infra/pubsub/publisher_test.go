package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecocart/config"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"
	mockSvc "ecocart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishReminderEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalPublisher(server.URL, discardLogger())
	event := &service.ReminderEvent{
		RequestID:      "req-1",
		ItemID:         uuid.NewString(),
		ProductName:    "Milk",
		ExpirationDate: "2026-03-12",
		Kind:           string(entity.ReminderExpiring),
	}

	require.NoError(t, publisher.PublishReminderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "expiring", received.Message.Attributes["kind"])

	assert.Equal(t, localSubscription, received.Subscription)
	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "database down", http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalPublisher(server.URL, discardLogger())

	err := publisher.PublishReminderEvent(context.Background(), &service.ReminderEvent{ItemID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500: database down")
}

func TestNewPublisher_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, discardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "p"}, discardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, discardLogger())
	assert.Error(t, err)

	publisher, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, discardLogger())
	require.NoError(t, err)
	assert.NotNil(t, publisher)
}

func TestReminderDispatcher_Dispatch(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewReminderDispatcher(publisher)

	reminder := &entity.ClaimedReminder{
		ItemID:         uuid.New(),
		ListID:         uuid.New(),
		OwnerID:        uuid.New(),
		ProductName:    "Yogurt",
		ExpirationDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Kind:           entity.ReminderExpired,
	}
	ctx := deliverycontext.WithRequestID(context.Background(), "sweep-42")

	publisher.EXPECT().
		PublishReminderEvent(mock.Anything, mock.MatchedBy(func(event *service.ReminderEvent) bool {
			return event.ItemID == reminder.ItemID.String() &&
				event.OwnerID == reminder.OwnerID.String() &&
				event.ExpirationDate == "2026-03-09" &&
				event.Kind == "expired" &&
				event.RequestID == "sweep-42"
		})).
		Return(nil).
		Once()

	require.NoError(t, dispatcher.Dispatch(ctx, reminder))
	assert.Error(t, dispatcher.Dispatch(ctx, nil))
}

func TestPushMessage_Event(t *testing.T) {
	var msg PushMessage
	_, err := msg.Event()
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"message":{"data":"eyJpdGVtX2lkIjoiYWJjIn0=","messageId":"1"}}`), &msg))
	event, err := msg.Event()
	require.NoError(t, err)
	assert.Equal(t, "abc", event.ItemID)
}
