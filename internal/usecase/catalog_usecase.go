package usecase

import (
	"context"
	"io"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountInput describes a discount to create or replace.
type DiscountInput struct {
	Type       string          `json:"type" validate:"required,oneof=percentage fixed"`
	Value      decimal.Decimal `json:"value"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil time.Time       `json:"valid_until"`
}

// CreateProductInput is a vendor creating a product together with its own listing.
type CreateProductInput struct {
	Name         string             `json:"name" validate:"required,max=255"`
	Description  string             `json:"description"`
	CategoryCode string             `json:"category" validate:"required"`
	UnitPrice    decimal.Decimal    `json:"price"`
	StockStatus  entity.StockStatus `json:"stock_status" validate:"omitempty,oneof=in_stock out_of_stock"`
	Discount     *DiscountInput     `json:"discount"`
}

// ProductDetail is a product with a price quote per supplier.
type ProductDetail struct {
	Product *entity.Product      `json:"product"`
	Quotes  []*entity.PriceQuote `json:"suppliers_info"`
	// Best is the quote the pricing engine would charge. Nil when unlisted.
	Best *entity.PriceQuote `json:"best,omitempty"`
}

// ProductImage is a product image ready to stream.
type ProductImage struct {
	Body        io.ReadCloser
	ContentType string
}

// CatalogUsecase manages categories, products and supplier profiles.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory is restricted to admins.
	CreateCategory(ctx context.Context, caller entity.Caller, code, label string) (*entity.Category, error)

	// RegisterSupplier creates the caller's vendor profile.
	RegisterSupplier(ctx context.Context, caller entity.Caller, companyName string) (*entity.Supplier, error)

	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)

	// CreateProduct creates a product, the caller's listing and an optional discount atomically.
	CreateProduct(ctx context.Context, caller entity.Caller, input *CreateProductInput) (*ProductDetail, error)

	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetail, error)

	SearchProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// UploadProductImage stores an image for a product the caller lists.
	UploadProductImage(ctx context.Context, caller entity.Caller, productID uuid.UUID, contentType string, size int64, body io.Reader) (*entity.Product, error)

	OpenProductImage(ctx context.Context, productID uuid.UUID) (*ProductImage, error)
}

// ListingInput describes a supplier price.
type ListingInput struct {
	ProductID   uuid.UUID          `json:"product_id" validate:"required"`
	UnitPrice   decimal.Decimal    `json:"price"`
	StockStatus entity.StockStatus `json:"stock_status" validate:"omitempty,oneof=in_stock out_of_stock"`
}

// OfferUsecase lets vendors manage their own listings and discounts.
type OfferUsecase interface {
	CreateListing(ctx context.Context, caller entity.Caller, input *ListingInput) (*entity.SupplierListing, error)
	UpdateListing(ctx context.Context, caller entity.Caller, listingID uuid.UUID, input *ListingInput) (*entity.SupplierListing, error)
	DeleteListing(ctx context.Context, caller entity.Caller, listingID uuid.UUID) error
	MyListings(ctx context.Context, caller entity.Caller) ([]*entity.SupplierListing, error)

	CreateDiscount(ctx context.Context, caller entity.Caller, productID uuid.UUID, input *DiscountInput) (*entity.Discount, error)
	UpdateDiscount(ctx context.Context, caller entity.Caller, discountID uuid.UUID, input *DiscountInput) (*entity.Discount, error)
	DeleteDiscount(ctx context.Context, caller entity.Caller, discountID uuid.UUID) error
	MyDiscounts(ctx context.Context, caller entity.Caller) ([]*entity.Discount, error)

	// ActiveDiscounts lists every discount active now.
	ActiveDiscounts(ctx context.Context) ([]*entity.Discount, error)
}
