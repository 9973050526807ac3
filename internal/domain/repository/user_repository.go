// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository mirrors identity-provider accounts locally.
type UserRepository interface {
	// Upsert inserts the user or refreshes name, email and capability flags.
	Upsert(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Count returns the number of known users.
	Count(ctx context.Context) (int64, error)

	// CountWithLists returns the number of users owning at least one shopping list.
	CountWithLists(ctx context.Context) (int64, error)
}
