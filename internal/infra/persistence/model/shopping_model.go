package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingListModel mirrors the 'shopping_lists' table.
type ShoppingListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PublicID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IsShared  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Shares []ListShareModel `gorm:"foreignKey:ListID"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ListShareModel mirrors the 'list_shares' join table.
type ListShareModel struct {
	ListID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListShareModel) TableName() string {
	return "list_shares"
}

// ShoppingItemModel mirrors the 'shopping_items' table, unique on (list_id, product_id).
type ShoppingItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_list_product"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_list_product;index"`
	Quantity       int             `gorm:"not null"`
	IsChecked      bool            `gorm:"not null;default:false"`
	ExpirationDate *time.Time      `gorm:"type:date;index"`
	ReminderSent   bool            `gorm:"not null;default:false"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingItemModel) TableName() string {
	return "shopping_items"
}
