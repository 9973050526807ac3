package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/service"
	"ecocart/internal/infra/pubsub"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockReminderDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockReminderDeliveryUsecase(t)

	return &PushHandler{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		deliveryUC: deliveryUC,
	}, deliveryUC
}

func pushBody(t *testing.T, event *service.ReminderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Subscription = "projects/local/subscriptions/reminder-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	event := &service.ReminderEvent{
		ItemID:         uuid.NewString(),
		ListID:         uuid.NewString(),
		OwnerID:        uuid.NewString(),
		ProductName:    "Yogurt",
		ExpirationDate: "2026-05-03",
		Kind:           "expiring",
	}

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "delivered", wantCode: http.StatusOK},
		{name: "storage failure is retried", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
		{name: "invalid event is acknowledged", err: domainerrors.ErrValidationFailed.WithDetails("invalid owner id"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newPushHandler(t)

			call := deliveryUC.EXPECT().DeliverReminder(mock.Anything, mock.MatchedBy(func(e *service.ReminderEvent) bool {
				return e.ItemID == event.ItemID && e.Kind == "expiring"
			}))
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(&usecase.ReminderDeliveryResult{Sent: 2}, nil).Once()
			}

			rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "req-1"}))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_Malformed(t *testing.T) {
	h, _ := newPushHandler(t)

	tests := map[string]string{
		"not json":       `{"message":`,
		"bad base64":     `{"message":{"data":"%%%"}}`,
		"bad event json": `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, doPush(h, body).Code)
		})
	}
}

func TestHandlePush_Unverified(t *testing.T) {
	h, _ := newPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	assert.Equal(t, http.StatusUnauthorized, doPush(h, `{}`).Code)
}

func TestExtractRequestID(t *testing.T) {
	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

	assert.Equal(t, "from-attr", extractRequestID(t.Context(), &msg, &service.ReminderEvent{RequestID: "from-event"}))

	msg.Message.Attributes = map[string]string{"request_id": "has space"}
	assert.Equal(t, "from-event", extractRequestID(t.Context(), &msg, &service.ReminderEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", extractRequestID(t.Context(), &msg, &service.ReminderEvent{RequestID: "from-event"}))

	_, err := uuid.Parse(extractRequestID(t.Context(), &msg, &service.ReminderEvent{}))
	assert.NoError(t, err)
}
