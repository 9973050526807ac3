package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is the vendor profile of a user. One supplier per user.
type Supplier struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups products, e.g. "dairy" / "Dairy".
type Category struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	Label string    `json:"label"`
}

// Product is a catalog entry. Prices live on its supplier listings.
type Product struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Category    *Category  `json:"category,omitempty"`
	ImageKey    string     `json:"image_key,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HasImage reports whether an image was uploaded for the product.
func (p *Product) HasImage() bool {
	return p.ImageKey != ""
}

// StockStatus is the availability a supplier advertises for a listing.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// IsValid checks if the StockStatus is a known value.
func (s StockStatus) IsValid() bool {
	return s == StockInStock || s == StockOutOfStock
}

// SupplierListing is the price a supplier charges for a product.
// A listing is unique per (product, supplier).
type SupplierListing struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	Supplier    *Supplier       `json:"supplier,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	StockStatus StockStatus     `json:"stock_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductFilter narrows a catalog search.
type ProductFilter struct {
	CategoryCode string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	// DiscountedAt keeps only products with a discount active at this instant.
	DiscountedAt *time.Time
	Sort         ProductSort
	Limit        int
	Offset       int
}

// ProductSort orders catalog search results.
type ProductSort string

const (
	SortDefault   ProductSort = ""
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortDiscount  ProductSort = "discount"
	// SortExpiry orders by the soonest ending active discount.
	SortExpiry ProductSort = "expiry"
)

// IsValid checks if the ProductSort is a supported ordering.
func (s ProductSort) IsValid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortDiscount, SortExpiry:
		return true
	default:
		return false
	}
}
