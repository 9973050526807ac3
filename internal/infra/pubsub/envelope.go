package pubsub

import (
	"encoding/json"
	"time"

	"ecocart/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attributes set on every reminder. Subscriptions may filter on kind.
const (
	AttrItemID    = "item_id"
	AttrKind      = "kind"
	AttrRequestID = "request_id"
)

// PushMessage is the body Pub/Sub POSTs to push subscriptions.
// Data is base64 on the wire; encoding/json handles that for []byte.
type PushMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime time.Time         `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Event decodes the reminder carried by the message.
func (m *PushMessage) Event() (*service.ReminderEvent, error) {
	if len(m.Message.Data) == 0 {
		return nil, errors.New("empty message data")
	}

	var event service.ReminderEvent
	if err := json.Unmarshal(m.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode reminder event")
	}

	return &event, nil
}

// encodeEvent returns the payload and attributes published for event.
func encodeEvent(event *service.ReminderEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode reminder event")
	}

	attrs := map[string]string{
		AttrItemID: event.ItemID,
		AttrKind:   event.Kind,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}
