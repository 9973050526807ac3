package usecase

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"

	"github.com/google/uuid"
)

// ContactUsecase manages the caller's contacts.
type ContactUsecase interface {
	// AddContact links the user registered under email.
	AddContact(ctx context.Context, caller entity.Caller, email, note string) (*entity.Contact, error)
	ListContacts(ctx context.Context, caller entity.Caller) ([]*entity.Contact, error)
	RemoveContact(ctx context.Context, caller entity.Caller, contactID uuid.UUID) error
}

// IdentityUsecase mirrors authenticated identities into the user table.
type IdentityUsecase interface {
	// SyncUser upserts the user described by validated token claims.
	SyncUser(ctx context.Context, claims *service.Claims) (*entity.User, error)
}
