package usecase

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateItemInput carries optional item changes.
type UpdateItemInput struct {
	Quantity       *int       `json:"quantity" validate:"omitempty,gt=0"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// ItemUsecase drives the item lifecycle from list to fridge.
type ItemUsecase interface {
	// AddItem prices the product now and merges it into the list.
	AddItem(ctx context.Context, caller entity.Caller, listID, productID uuid.UUID, quantity int) (*entity.ShoppingItem, error)

	// MarkPurchased moves the item into the fridge. A nil expiration uses the default shelf life.
	MarkPurchased(ctx context.Context, caller entity.Caller, itemID uuid.UUID, expiration *time.Time) (*entity.ShoppingItem, error)

	UpdateItem(ctx context.Context, caller entity.Caller, itemID uuid.UUID, input *UpdateItemInput) (*entity.ShoppingItem, error)
	RemoveItem(ctx context.Context, caller entity.Caller, itemID uuid.UUID) error

	// Fridge lists purchased items of the caller's lists.
	Fridge(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error)
	ExpiringItems(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error)
	ExpiredItems(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error)
}
