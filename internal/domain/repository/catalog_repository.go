package repository

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrDuplicateSupplier = errors.New("supplier already exists for user")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category code already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrListingNotFound   = errors.New("listing not found")
	// ErrDuplicateListing is returned when a supplier prices the same product twice.
	ErrDuplicateListing = errors.New("listing already exists for product and supplier")
	ErrDiscountNotFound = errors.New("discount not found")
)

// SupplierRepository persists vendor profiles.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByCode(ctx context.Context, code string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns the product with its category loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SetImageKey stores the blob key of the product image.
	SetImageKey(ctx context.Context, id uuid.UUID, key string) error

	// Search lists products matching the filter.
	Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindByCategoryExcluding lists products of a category whose ids are not in exclude.
	FindByCategoryExcluding(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]*entity.Product, error)

	// FindDiscounted lists distinct products with at least one discount active at at.
	FindDiscounted(ctx context.Context, at time.Time, limit int) ([]*entity.Product, error)
}

// ListingRepository persists supplier prices.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.SupplierListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplierListing, error)

	// FindByProduct returns every listing of a product ordered by unit price,
	// then creation time, then id.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SupplierListing, error)

	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierListing, error)
	Update(ctx context.Context, listing *entity.SupplierListing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiscountRepository persists time-bounded discounts.
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Discount, error)

	// FindActive returns discounts on (productID, supplierID) active at at.
	FindActive(ctx context.Context, productID, supplierID uuid.UUID, at time.Time) ([]*entity.Discount, error)

	// FindActiveForProduct returns discounts on productID from any supplier active at at.
	FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]*entity.Discount, error)

	// ListActive returns every discount active at at.
	ListActive(ctx context.Context, at time.Time) ([]*entity.Discount, error)

	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}
