package impl

import (
	"context"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/service"
	mockRepo "ecocart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_SyncUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		claims     *service.Claims
		setupMocks func(userRepo *mockRepo.MockUserRepository)
		wantErr    error
		check      func(t *testing.T, user *entity.User)
	}{
		{
			name:    "missing claims",
			claims:  nil,
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "nil user id",
			claims:  &service.Claims{Email: "a@example.com"},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "normalises identity and maps roles",
			claims: &service.Claims{UserID: userID, Email: "  Ann@Example.COM ", Name: " Ann ", Roles: []string{"user", "vendor", "root"}},
			setupMocks: func(userRepo *mockRepo.MockUserRepository) {
				userRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
					return u.ID == userID && u.Email == "ann@example.com" && u.Name == "Ann" && u.IsVendor && !u.IsAdmin
				})).Return(nil).Once()
			},
			check: func(t *testing.T, user *entity.User) {
				assert.Equal(t, userID, user.ID)
				assert.True(t, user.IsVendor)
			},
		},
		{
			name:   "storage failure",
			claims: &service.Claims{UserID: userID},
			setupMocks: func(userRepo *mockRepo.MockUserRepository) {
				userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo)
			}
			svc := NewIdentityService(userRepo)

			user, err := svc.SyncUser(context.Background(), tt.claims)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.check != nil:
				require.NoError(t, err)
				tt.check(t, user)
			default:
				require.Error(t, err)
			}
		})
	}
}
