package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierModel mirrors the 'suppliers' table. One row per vendor user.
type SupplierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName string    `gorm:"type:varchar(200);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	ImageKey    string     `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// SupplierListingModel mirrors the 'supplier_listings' table, unique on (product_id, supplier_id).
type SupplierListingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_listing_product_supplier"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_listing_product_supplier;index"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockStatus string          `gorm:"type:varchar(20);not null;default:'in_stock'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierListingModel) TableName() string {
	return "supplier_listings"
}

// DiscountModel mirrors the 'discounts' table.
type DiscountModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_discount_product_supplier"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index:idx_discount_product_supplier"`
	Type       string          `gorm:"type:varchar(20);not null"`
	Value      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValidFrom  time.Time       `gorm:"not null"`
	ValidUntil time.Time       `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}
