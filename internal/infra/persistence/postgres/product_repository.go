package postgres

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	minListingPriceSQL = "(SELECT MIN(sl.unit_price) FROM supplier_listings sl WHERE sl.product_id = products.id)"
	activeDiscountSQL  = "EXISTS (SELECT 1 FROM discounts d WHERE d.product_id = products.id AND d.valid_from <= ? AND d.valid_until >= ?)"
	maxDiscountSQL     = "(SELECT MAX(d.value) FROM discounts d WHERE d.product_id = products.id AND d.valid_from <= ? AND d.valid_until >= ?) DESC NULLS LAST"
	soonestEndingSQL   = "(SELECT MIN(d.valid_until) FROM discounts d WHERE d.product_id = products.id AND d.valid_from <= ? AND d.valid_until >= ?) ASC NULLS LAST"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID returns the product with its category loaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"category_id": product.CategoryID,
			"updated_at":  time.Now().UTC(),
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) SetImageKey(ctx context.Context, id uuid.UUID, key string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("image_key", key)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Search filters on the cheapest listing price of each product.
// Ties under every sort fall back to name and id.
func (repo *productRepository) Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Preload("Category")

	if filter.CategoryCode != "" {
		query = query.Where("products.category_id IN (SELECT c.id FROM categories c WHERE c.code = ?)", filter.CategoryCode)
	}
	if filter.MinPrice != nil {
		query = query.Where(minListingPriceSQL+" >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where(minListingPriceSQL+" <= ?", *filter.MaxPrice)
	}
	if filter.DiscountedAt != nil {
		query = query.Where(activeDiscountSQL, *filter.DiscountedAt, *filter.DiscountedAt)
	}

	query = applyProductSort(query, filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(productModels), nil
}

func applyProductSort(query *gorm.DB, filter entity.ProductFilter) *gorm.DB {
	at := time.Now().UTC()
	if filter.DiscountedAt != nil {
		at = *filter.DiscountedAt
	}

	switch filter.Sort {
	case entity.SortPriceAsc:
		query = query.Order(minListingPriceSQL + " ASC NULLS LAST")
	case entity.SortPriceDesc:
		query = query.Order(minListingPriceSQL + " DESC NULLS LAST")
	case entity.SortDiscount:
		query = query.Order(clause.OrderBy{Expression: clause.Expr{SQL: maxDiscountSQL, Vars: []any{at, at}}})
	case entity.SortExpiry:
		query = query.Order(clause.OrderBy{Expression: clause.Expr{SQL: soonestEndingSQL, Vars: []any{at, at}}})
	default:
		return query.Order("products.created_at DESC").Order("products.id ASC")
	}

	return query.Order("products.name ASC").Order("products.id ASC")
}

// FindByCategoryExcluding lists products of a category whose ids are not in exclude.
func (repo *productRepository) FindByCategoryExcluding(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID)

	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var productModels []*model.ProductModel
	if err := query.Order("name ASC").Order("id ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return toProductDomains(productModels), nil
}

// FindDiscounted lists distinct products with at least one discount active at at.
func (repo *productRepository) FindDiscounted(ctx context.Context, at time.Time, limit int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Preload("Category").
		Where(activeDiscountSQL, at, at).
		Order(clause.OrderBy{Expression: clause.Expr{SQL: soonestEndingSQL, Vars: []any{at, at}}}).
		Order("products.id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discounted products")
	}

	return toProductDomains(productModels), nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		ImageKey:    data.ImageKey,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		ImageKey:    data.ImageKey,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
