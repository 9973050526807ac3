package repository

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for shopping persistence.
var (
	ErrListNotFound = errors.New("shopping list not found")
	ErrItemNotFound = errors.New("shopping item not found")
	// ErrItemAlreadyChecked is returned when a purchase mark loses against an earlier one.
	ErrItemAlreadyChecked = errors.New("shopping item already checked")
	// ErrItemQuantityDecrease is returned when a stored quantity is already above the one being written.
	ErrItemQuantityDecrease = errors.New("shopping item quantity would decrease")
	// ErrItemValueOutOfRange is returned when a quantity or total does not fit its column.
	ErrItemValueOutOfRange = errors.New("shopping item value out of range")
)

// ShoppingListRepository persists shopping lists and their share set.
type ShoppingListRepository interface {
	Create(ctx context.Context, list *entity.ShoppingList) error

	// FindByID returns the list with its SharedWith ids loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)

	FindByPublicID(ctx context.Context, publicID uuid.UUID) (*entity.ShoppingList, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingList, error)
	FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)

	// Update stores the name and is_shared flag.
	Update(ctx context.Context, list *entity.ShoppingList) error

	// Delete removes the list; items and shares cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddShare grants userID read access. Granting twice is a no-op.
	AddShare(ctx context.Context, listID, userID uuid.UUID) error
}

// ShoppingItemRepository persists list items and answers history queries.
type ShoppingItemRepository interface {
	// UpsertMerge inserts a new unchecked item or atomically adds the quantity to the
	// existing row for the same (list, product), returning the row as stored.
	UpsertMerge(ctx context.Context, upsert entity.ItemUpsert) (*entity.ShoppingItem, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingItem, error)

	// FindByList returns the items of a list with products loaded.
	FindByList(ctx context.Context, listID uuid.UUID) ([]*entity.ShoppingItem, error)

	UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error

	// Update writes the non-nil fields of change. A quantity is only written while the
	// stored quantity does not exceed it; otherwise ErrItemQuantityDecrease is returned.
	Update(ctx context.Context, id uuid.UUID, change entity.ItemChange) error

	// MarkPurchased sets is_checked and the expiration date only if the item is still
	// unchecked. Returns ErrItemAlreadyChecked otherwise.
	MarkPurchased(ctx context.Context, id uuid.UUID, expiration time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error

	// FindCheckedByOwner returns the checked items of lists owned by ownerID.
	FindCheckedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingItem, error)

	// FindByOwnerInWindow returns items of ownerID's lists whose expiration date is in window.
	FindByOwnerInWindow(ctx context.Context, ownerID uuid.UUID, window entity.ReminderWindow) ([]*entity.ShoppingItem, error)

	// ClaimReminders flips reminder_sent to true on every unflagged item whose expiration
	// date lies in window, restricted to ownerID's lists when ownerID is set, and returns
	// the claimed rows. The flip is a single conditional UPDATE.
	ClaimReminders(ctx context.Context, window entity.ReminderWindow, ownerID *uuid.UUID) ([]*entity.ClaimedReminder, error)

	// CountCategoriesForOwner counts items of ownerID's lists per product category,
	// ordered by count descending then category code ascending.
	CountCategoriesForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CategoryCount, error)

	// FindProductIDsForOwner returns the distinct product ids in ownerID's lists.
	FindProductIDsForOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// TopProducts ranks products by number of item rows.
	TopProducts(ctx context.Context, limit int) ([]*entity.ProductPopularity, error)
}
