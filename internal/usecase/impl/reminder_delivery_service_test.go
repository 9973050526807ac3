package impl

import (
	"context"
	"testing"

	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/service"
	mockRepo "ecocart/internal/mocks/repository"
	mockSvc "ecocart/internal/mocks/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderDeliveryFixtures struct {
	service         usecase.ReminderDeliveryUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	reminderLogRepo *mockRepo.MockReminderLogRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestReminderDeliveryService(t *testing.T) reminderDeliveryFixtures {
	fx := reminderDeliveryFixtures{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		reminderLogRepo: mockRepo.NewMockReminderLogRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewReminderDeliveryService(ReminderDeliveryServiceParams{
		DeviceRepo:      fx.deviceRepo,
		ReminderLogRepo: fx.reminderLogRepo,
		NotificationSvc: fx.notificationSvc,
		Clock:           fixedClock{now: referenceNow},
		Logger:          newDiscardLogger(),
	})

	return fx
}

func newReminderEvent(ownerID uuid.UUID, kind entity.ReminderKind) *service.ReminderEvent {
	return &service.ReminderEvent{
		ItemID:         uuid.NewString(),
		ListID:         uuid.NewString(),
		OwnerID:        ownerID.String(),
		ProductName:    "Milk",
		ExpirationDate: "2026-03-12",
		Kind:           string(kind),
	}
}

func TestReminderDeliveryService_DeliverReminder(t *testing.T) {
	fx := createTestReminderDeliveryService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	event := newReminderEvent(ownerID, entity.ReminderExpiring)

	phone := &entity.UserDevice{ID: uuid.New(), UserID: ownerID, FCMToken: "token-phone", IsActive: true}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: ownerID, FCMToken: "token-stale", IsActive: true}
	tablet := &entity.UserDevice{ID: uuid.New(), UserID: ownerID, FCMToken: "token-tablet", IsActive: true}

	fx.deviceRepo.EXPECT().ListByUser(ctx, ownerID, true).Return([]*entity.UserDevice{phone, stale, tablet}, nil)
	fx.notificationSvc.EXPECT().
		Multicast(ctx, []string{"token-phone", "token-stale", "token-tablet"}, mock.MatchedBy(func(p *service.Push) bool {
			return p.Title == constants.ReminderTitleExpiring &&
				p.Body == "「Milk」將於 2026-03-12 過期" &&
				p.CollapseKey == "item-"+event.ItemID
		})).
		Return([]service.PushOutcome{
			{Token: "token-phone", MessageID: "msg-1"},
			{Token: "token-stale", Err: errors.New("unregistered"), Rejected: true},
			{Token: "token-tablet", Err: errors.New("quota exceeded")},
		}, nil)
	fx.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-stale"}).Return(int64(1), nil)
	fx.reminderLogRepo.EXPECT().
		BatchCreate(ctx, mock.MatchedBy(func(logs []*entity.ReminderLog) bool {
			return len(logs) == 3 &&
				logs[0].Status == entity.ReminderStatusSent &&
				logs[0].FCMMessageID == "msg-1" &&
				logs[0].DeviceID == phone.ID &&
				logs[0].SentAt.Equal(referenceNow) &&
				logs[1].Status == entity.ReminderStatusFailed &&
				logs[1].DeviceID == stale.ID &&
				logs[2].ErrorMessage == "send error: quota exceeded"
		})).
		Return(nil)

	result, err := fx.service.DeliverReminder(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestReminderPush_Expired(t *testing.T) {
	push := reminderPush(newReminderEvent(uuid.New(), entity.ReminderExpired))

	assert.Equal(t, constants.ReminderTitleExpired, push.Title)
	assert.Equal(t, "「Milk」已於 2026-03-12 過期", push.Body)
	assert.Equal(t, "expired", push.Data["kind"])
}

func TestReminderDeliveryService_DeliverReminder_NoDevices(t *testing.T) {
	fx := createTestReminderDeliveryService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, ownerID, true).Return([]*entity.UserDevice{}, nil)

	result, err := fx.service.DeliverReminder(ctx, newReminderEvent(ownerID, entity.ReminderExpiring))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestReminderDeliveryService_DeliverReminder_BatchError(t *testing.T) {
	fx := createTestReminderDeliveryService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: ownerID, FCMToken: "token-a", IsActive: true}}

	fx.deviceRepo.EXPECT().ListByUser(ctx, ownerID, true).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		Multicast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))
	fx.reminderLogRepo.EXPECT().
		BatchCreate(ctx, mock.MatchedBy(func(logs []*entity.ReminderLog) bool {
			return len(logs) == 1 && logs[0].DeviceID == devices[0].ID && logs[0].Status == entity.ReminderStatusFailed
		})).
		Return(nil)

	result, err := fx.service.DeliverReminder(ctx, newReminderEvent(ownerID, entity.ReminderExpiring))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestReminderDeliveryService_DeliverReminder_InvalidEvent(t *testing.T) {
	fx := createTestReminderDeliveryService(t)

	event := newReminderEvent(uuid.New(), entity.ReminderExpiring)
	event.OwnerID = "not-a-uuid"
	_, err := fx.service.DeliverReminder(context.Background(), event)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	event = newReminderEvent(uuid.New(), entity.ReminderKind("weekly"))
	_, err = fx.service.DeliverReminder(context.Background(), event)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReminderDeliveryService_DeliverReminder_DeviceLookupFails(t *testing.T) {
	fx := createTestReminderDeliveryService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, ownerID, true).Return(nil, errors.New("connection refused"))

	_, err := fx.service.DeliverReminder(ctx, newReminderEvent(ownerID, entity.ReminderExpiring))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find active devices")
}

func TestReminderDeliveryService_DeliverReminder_PushDisabled(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewReminderDeliveryService(ReminderDeliveryServiceParams{
		DeviceRepo:      deviceRepo,
		ReminderLogRepo: mockRepo.NewMockReminderLogRepository(t),
		Clock:           fixedClock{now: referenceNow},
		Logger:          newDiscardLogger(),
	})
	ctx := context.Background()
	ownerID := uuid.New()

	deviceRepo.EXPECT().ListByUser(ctx, ownerID, true).
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "t"}}, nil)

	result, err := svc.DeliverReminder(ctx, newReminderEvent(ownerID, entity.ReminderExpired))
	require.NoError(t, err)
	assert.Zero(t, result.Sent+result.Failed)
}
