package repository

import (
	"context"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrDuplicateContact = errors.New("contact already exists")
)

// ContactRepository persists directed user contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)
	Exists(ctx context.Context, userID, contactUserID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
