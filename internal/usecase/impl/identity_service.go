package impl

import (
	"context"
	"strings"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type identityService struct {
	userRepo repository.UserRepository
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(userRepo repository.UserRepository) usecase.IdentityUsecase {
	return &identityService{userRepo: userRepo}
}

// SyncUser mirrors the token identity so contacts and statistics can see it.
func (s *identityService) SyncUser(ctx context.Context, claims *service.Claims) (*entity.User, error) {
	if claims == nil || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token carries no user id")
	}

	roles := entity.RolesFromStrings(claims.Roles)
	user := &entity.User{
		ID:       claims.UserID,
		Email:    strings.ToLower(strings.TrimSpace(claims.Email)),
		Name:     strings.TrimSpace(claims.Name),
		IsVendor: roles.Contains(entity.RoleVendor),
		IsAdmin:  roles.Contains(entity.RoleAdmin),
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	return user, nil
}
