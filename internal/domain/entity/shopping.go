package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingList is a named set of items owned by one user and optionally
// shared with the owner's contacts.
type ShoppingList struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	SharedWith []uuid.UUID     `json:"shared_with"`
	PublicID   uuid.UUID       `json:"public_id"`
	IsShared   bool            `json:"is_shared"`
	Items      []*ShoppingItem `json:"items,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the list.
func (l *ShoppingList) IsOwnedBy(userID uuid.UUID) bool {
	return l.OwnerID == userID
}

// IsVisibleTo reports whether userID may read the list.
func (l *ShoppingList) IsVisibleTo(userID uuid.UUID) bool {
	return l.IsOwnedBy(userID) || slices.Contains(l.SharedWith, userID)
}

// ItemState is the lifecycle position of a shopping item.
type ItemState string

const (
	ItemActive       ItemState = "active"
	ItemPurchased    ItemState = "purchased"
	ItemExpiringSoon ItemState = "expiring_soon"
	ItemExpired      ItemState = "expired"
)

// ShoppingItem is one product line on a shopping list.
type ShoppingItem struct {
	ID             uuid.UUID       `json:"id"`
	ListID         uuid.UUID       `json:"list_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	Quantity       int             `json:"quantity"`
	IsChecked      bool            `json:"is_checked"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	ReminderSent   bool            `json:"reminder_sent"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// State derives the lifecycle state at now using a lead window of leadDays.
func (i *ShoppingItem) State(now time.Time, leadDays int) ItemState {
	if !i.IsChecked {
		return ItemActive
	}
	if i.ExpirationDate == nil {
		return ItemPurchased
	}

	today := DateOf(now)
	expiration := DateOf(*i.ExpirationDate)

	switch {
	case expiration.Before(today):
		return ItemExpired
	case !expiration.After(today.AddDate(0, 0, leadDays)):
		return ItemExpiringSoon
	default:
		return ItemPurchased
	}
}

// ItemUpsert carries the values for an add-or-merge of one product on a list.
type ItemUpsert struct {
	ListID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// ItemChange lists the fields an item update sets. Nil fields keep their stored value.
// TotalPrice travels with Quantity.
type ItemChange struct {
	Quantity       *int
	TotalPrice     *decimal.Decimal
	ExpirationDate *time.Time
}

// IsEmpty reports whether the change touches nothing.
func (c ItemChange) IsEmpty() bool {
	return c.Quantity == nil && c.ExpirationDate == nil
}
