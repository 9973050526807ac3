package usecase

import (
	"context"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsecase manages shopping lists and who may see them.
type ListUsecase interface {
	CreateList(ctx context.Context, caller entity.Caller, name string) (*entity.ShoppingList, error)

	// GetList returns a list with its items when the caller owns it or it is shared with them.
	GetList(ctx context.Context, caller entity.Caller, listID uuid.UUID) (*entity.ShoppingList, error)

	ListOwned(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingList, error)
	ListSharedWithMe(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingList, error)

	RenameList(ctx context.Context, caller entity.Caller, listID uuid.UUID, name string) (*entity.ShoppingList, error)
	DeleteList(ctx context.Context, caller entity.Caller, listID uuid.UUID) error

	// SetPublic toggles the read-only public view.
	SetPublic(ctx context.Context, caller entity.Caller, listID uuid.UUID, isShared bool) (*entity.ShoppingList, error)

	// ShareList grants a contact read access.
	ShareList(ctx context.Context, caller entity.Caller, listID, contactUserID uuid.UUID) (*entity.ShoppingList, error)

	// GetPublicList returns a list by public id when its public view is enabled.
	GetPublicList(ctx context.Context, publicID uuid.UUID) (*entity.ShoppingList, error)

	// ShareQRCode renders the public link of an owned list as PNG.
	ShareQRCode(ctx context.Context, caller entity.Caller, listID uuid.UUID) ([]byte, error)
}
