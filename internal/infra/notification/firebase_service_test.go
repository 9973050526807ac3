package notification

import (
	"context"
	"testing"

	"ecocart/config"
	"ecocart/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirebaseService_RequiresCredentials(t *testing.T) {
	_, err := NewFirebaseService(context.Background(), nil)
	assert.Error(t, err)

	_, err = NewFirebaseService(context.Background(), &config.FirebaseConfig{ProjectID: "ecocart"})
	assert.Error(t, err)
}

func TestNewMulticast(t *testing.T) {
	push := &service.Push{
		Title:       "商品即將過期",
		Body:        "「Milk」將於 2026-03-12 過期",
		Data:        map[string]string{"kind": "expiring"},
		CollapseKey: "item-1",
	}

	msg := newMulticast([]string{"a", "b"}, push)

	require.NotNil(t, msg.Notification)
	assert.Equal(t, []string{"a", "b"}, msg.Tokens)
	assert.Equal(t, push.Title, msg.Notification.Title)
	assert.Equal(t, push.Data, msg.Data)
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, "item-1", msg.Android.CollapseKey)
	assert.Equal(t, "item-1", msg.APNS.Headers["apns-collapse-id"])
	assert.Equal(t, "item-1", msg.Webpush.Headers["Topic"])
}

func TestNewMulticast_WithoutCollapseKey(t *testing.T) {
	msg := newMulticast([]string{"a"}, &service.Push{Title: "t"})

	assert.Nil(t, msg.APNS)
	assert.Nil(t, msg.Webpush)
	assert.Empty(t, msg.Android.CollapseKey)
}

func TestToOutcomes(t *testing.T) {
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "projects/p/messages/1"},
		{Error: errors.New("quota exceeded")},
	}

	outcomes := toOutcomes([]string{"a", "b", "c"}, responses)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "projects/p/messages/1", outcomes[0].MessageID)
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.False(t, outcomes[1].Rejected)
	assert.Equal(t, "c", outcomes[2].Token)
	assert.Error(t, outcomes[2].Err)
}

func TestMulticast_EmptyAndOversized(t *testing.T) {
	svc := &firebaseService{}

	outcomes, err := svc.Multicast(context.Background(), nil, &service.Push{})
	require.NoError(t, err)
	assert.Nil(t, outcomes)

	_, err = svc.Multicast(context.Background(), make([]string, 501), &service.Push{})
	assert.Error(t, err)
}
