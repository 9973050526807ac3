package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockRepo "ecocart/internal/mocks/repository"
	mockSvc "ecocart/internal/mocks/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderServiceFixtures struct {
	service    usecase.ReminderUsecase
	itemRepo   *mockRepo.MockShoppingItemRepository
	dispatcher *mockSvc.MockReminderDispatcher
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	itemRepo := mockRepo.NewMockShoppingItemRepository(t)
	dispatcher := mockSvc.NewMockReminderDispatcher(t)

	return reminderServiceFixtures{
		service: NewReminderService(ReminderServiceParams{
			ItemRepo:   itemRepo,
			Dispatcher: dispatcher,
			Clock:      fixedClock{now: referenceNow},
			Config:     newTestConfig(),
			Logger:     newDiscardLogger(),
		}),
		itemRepo:   itemRepo,
		dispatcher: dispatcher,
	}
}

// fridgeStore keeps reminder flags in memory and claims them the way the
// conditional update does.
type fridgeStore struct {
	mu    sync.Mutex
	items []*entity.ShoppingItem
	owner map[uuid.UUID]uuid.UUID
}

func (s *fridgeStore) add(owner uuid.UUID, expiration *time.Time) *entity.ShoppingItem {
	item := &entity.ShoppingItem{
		ID:             uuid.New(),
		ListID:         uuid.New(),
		Quantity:       1,
		IsChecked:      true,
		ExpirationDate: expiration,
	}
	s.items = append(s.items, item)
	s.owner[item.ID] = owner

	return item
}

func (s *fridgeStore) claim(_ context.Context, window entity.ReminderWindow, ownerID *uuid.UUID) ([]*entity.ClaimedReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claimed []*entity.ClaimedReminder
	for _, item := range s.items {
		if item.ReminderSent || item.ExpirationDate == nil || !window.Contains(*item.ExpirationDate) {
			continue
		}
		if ownerID != nil && s.owner[item.ID] != *ownerID {
			continue
		}

		item.ReminderSent = true
		claimed = append(claimed, &entity.ClaimedReminder{
			ItemID:         item.ID,
			ListID:         item.ListID,
			OwnerID:        s.owner[item.ID],
			ProductName:    "Milk",
			ExpirationDate: *item.ExpirationDate,
		})
	}

	return claimed, nil
}

func newFridgeStore() *fridgeStore {
	return &fridgeStore{owner: map[uuid.UUID]uuid.UUID{}}
}

func TestReminderService_Sweep_ClaimsOnce(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	owner := uuid.New()

	store := newFridgeStore()
	tomorrow := store.add(owner, datePtr(2026, time.March, 11))
	edge := store.add(owner, datePtr(2026, time.March, 13))
	store.add(owner, datePtr(2026, time.March, 14))
	store.add(owner, datePtr(2026, time.March, 9))
	store.add(owner, nil)

	fx.itemRepo.EXPECT().
		ClaimReminders(ctx, entity.WindowFor(entity.ReminderExpiring, referenceNow, 3), mock.MatchedBy(func(ownerID *uuid.UUID) bool { return ownerID == nil })).
		RunAndReturn(store.claim)

	var mu sync.Mutex
	dispatched := map[uuid.UUID]entity.ReminderKind{}
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.ClaimedReminder")).
		RunAndReturn(func(_ context.Context, reminder *entity.ClaimedReminder) error {
			mu.Lock()
			defer mu.Unlock()
			dispatched[reminder.ItemID] = reminder.Kind

			return nil
		})

	first, err := fx.service.Sweep(ctx, entity.ReminderExpiring, referenceNow)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Claimed)
	assert.Equal(t, 2, first.Dispatched)
	assert.Equal(t, 0, first.Failed)
	assert.Equal(t, map[uuid.UUID]entity.ReminderKind{
		tomorrow.ID: entity.ReminderExpiring,
		edge.ID:     entity.ReminderExpiring,
	}, dispatched)

	second, err := fx.service.Sweep(ctx, entity.ReminderExpiring, referenceNow)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Claimed)
	assert.Len(t, dispatched, 2)
}

func TestReminderService_Sweep_ExpiredWindow(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	owner := uuid.New()

	store := newFridgeStore()
	past := store.add(owner, datePtr(2026, time.March, 9))
	store.add(owner, datePtr(2026, time.March, 10))

	fx.itemRepo.EXPECT().
		ClaimReminders(ctx, entity.WindowFor(entity.ReminderExpired, referenceNow, 3), mock.Anything).
		RunAndReturn(store.claim)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(r *entity.ClaimedReminder) bool {
			return r.ItemID == past.ID && r.Kind == entity.ReminderExpired
		})).
		Return(nil).
		Once()

	result, err := fx.service.Sweep(ctx, entity.ReminderExpired, referenceNow)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Claimed)
	assert.Equal(t, entity.ReminderExpired, result.Kind)
}

func TestReminderService_Sweep_DispatchFailureKeepsClaim(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	owner := uuid.New()

	store := newFridgeStore()
	failing := store.add(owner, datePtr(2026, time.March, 11))
	store.add(owner, datePtr(2026, time.March, 12))

	fx.itemRepo.EXPECT().ClaimReminders(ctx, mock.Anything, mock.Anything).RunAndReturn(store.claim)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, reminder *entity.ClaimedReminder) error {
			if reminder.ItemID == failing.ID {
				return errors.New("topic unavailable")
			}

			return nil
		})

	result, err := fx.service.Sweep(ctx, entity.ReminderExpiring, referenceNow)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Claimed)
	assert.Equal(t, 1, result.Dispatched)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, failing.ReminderSent)

	again, err := fx.service.Sweep(ctx, entity.ReminderExpiring, referenceNow)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Claimed)
}

func TestReminderService_Sweep_ClaimError(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().ClaimReminders(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("deadlock detected"))

	_, err := fx.service.Sweep(ctx, entity.ReminderExpiring, referenceNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to claim expiring reminders")
}

func TestReminderService_Sweep_UnknownKind(t *testing.T) {
	fx := createTestReminderService(t)

	_, err := fx.service.Sweep(context.Background(), entity.ReminderKind("weekly"), referenceNow)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReminderService_MarkAllRead_OnlyCallerItems(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	caller := newCaller()
	other := uuid.New()

	store := newFridgeStore()
	mine := store.add(caller.UserID, datePtr(2026, time.March, 11))
	theirs := store.add(other, datePtr(2026, time.March, 11))

	fx.itemRepo.EXPECT().
		ClaimReminders(ctx, entity.WindowFor(entity.ReminderExpiring, referenceNow, 3), &caller.UserID).
		RunAndReturn(store.claim)

	count, err := fx.service.MarkAllRead(ctx, caller, entity.ReminderExpiring)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.True(t, mine.ReminderSent)
	assert.False(t, theirs.ReminderSent)
}
