package impl

import (
	"context"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	mockRepo "ecocart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_AddContact(t *testing.T) {
	ctx := context.Background()
	caller := newCaller()
	friend := &entity.User{ID: uuid.New(), Email: "amy@example.com", Name: "Amy"}

	t.Run("links registered user", func(t *testing.T) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, UserRepo: userRepo, Logger: newDiscardLogger()})

		userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(friend, nil)
		contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil)

		contact, err := svc.AddContact(ctx, caller, " Amy@Example.com ", "roommate")
		require.NoError(t, err)
		assert.Equal(t, friend.ID, contact.ContactUserID)
		assert.Equal(t, "roommate", contact.Note)
	})

	t.Run("unknown email", func(t *testing.T) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, UserRepo: userRepo, Logger: newDiscardLogger()})

		userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := svc.AddContact(ctx, caller, "ghost@example.com", "")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("self", func(t *testing.T) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, UserRepo: userRepo, Logger: newDiscardLogger()})

		userRepo.EXPECT().FindByEmail(ctx, "me@example.com").Return(&entity.User{ID: caller.UserID}, nil)

		_, err := svc.AddContact(ctx, caller, "me@example.com", "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate", func(t *testing.T) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, UserRepo: userRepo, Logger: newDiscardLogger()})

		userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(friend, nil)
		contactRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateContact)

		_, err := svc.AddContact(ctx, caller, "amy@example.com", "")
		assert.ErrorIs(t, err, domainerrors.ErrContactAlreadyExists)
	})
}

func TestContactService_RemoveContact_NotFound(t *testing.T) {
	ctx := context.Background()
	contactRepo := mockRepo.NewMockContactRepository(t)
	svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, UserRepo: mockRepo.NewMockUserRepository(t), Logger: newDiscardLogger()})
	caller := newCaller()
	id := uuid.New()

	contactRepo.EXPECT().Delete(ctx, caller.UserID, id).Return(repository.ErrContactNotFound)

	err := svc.RemoveContact(ctx, caller, id)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestIdentityService_SyncUser_VendorClaims(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewIdentityService(userRepo)
	userID := uuid.New()

	userRepo.EXPECT().
		Upsert(ctx, &entity.User{ID: userID, Email: "vendor@example.com", Name: "Vera", IsVendor: true}).
		Return(nil)

	user, err := svc.SyncUser(ctx, &service.Claims{
		UserID: userID,
		Roles:  []string{"user", "vendor", "superuser"},
		Name:   "Vera",
		Email:  "Vendor@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleVendor}, user.Roles())

	_, err = svc.SyncUser(ctx, &service.Claims{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
