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
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.SupplierListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Omit("Supplier").Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListing
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplierListing, error) {
	var listingM model.SupplierListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Supplier").
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return toListingDomain(&listingM), nil
}

// FindByProduct orders by unit price, then creation time, then id.
func (repo *listingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SupplierListing, error) {
	return repo.findMany(ctx, "product_id = ?", productID, "unit_price ASC, created_at ASC, id ASC")
}

func (repo *listingRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierListing, error) {
	return repo.findMany(ctx, "supplier_id = ?", supplierID, "created_at DESC, id ASC")
}

func (repo *listingRepository) findMany(ctx context.Context, query string, arg any, order string) ([]*entity.SupplierListing, error) {
	var listingModels []*model.SupplierListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Supplier").
		Where(query, arg).
		Order(order).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	listings := make([]*entity.SupplierListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

func (repo *listingRepository) Update(ctx context.Context, listing *entity.SupplierListing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"unit_price":   listing.UnitPrice,
			"stock_status": string(listing.StockStatus),
			"updated_at":   time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SupplierListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{db: db}
}

func (repo *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

func (repo *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discountM model.DiscountModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	return toDiscountDomain(&discountM), nil
}

func (repo *discountRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Discount, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

func (repo *discountRepository) FindActive(ctx context.Context, productID, supplierID uuid.UUID, at time.Time) ([]*entity.Discount, error) {
	return repo.findMany(activeAt(repo.db.WithContext(ctx), at).
		Where("product_id = ? AND supplier_id = ?", productID, supplierID))
}

func (repo *discountRepository) FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]*entity.Discount, error) {
	return repo.findMany(activeAt(repo.db.WithContext(ctx), at).Where("product_id = ?", productID))
}

func (repo *discountRepository) ListActive(ctx context.Context, at time.Time) ([]*entity.Discount, error) {
	return repo.findMany(activeAt(repo.db.WithContext(ctx), at))
}

// activeAt keeps discounts whose closed interval [valid_from, valid_until] contains at.
func activeAt(query *gorm.DB, at time.Time) *gorm.DB {
	return query.Where("valid_from <= ? AND valid_until >= ?", at, at)
}

func (repo *discountRepository) findMany(query *gorm.DB) ([]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := query.Order("valid_from ASC, id ASC").Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, nil
}

func (repo *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ?", discount.ID).
		Updates(map[string]any{
			"type":        string(discount.Type),
			"value":       discount.Value,
			"valid_from":  discount.ValidFrom,
			"valid_until": discount.ValidUntil,
			"updated_at":  time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

func (repo *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DiscountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.SupplierListingModel) *entity.SupplierListing {
	if data == nil {
		return nil
	}

	return &entity.SupplierListing{
		ID:          data.ID,
		ProductID:   data.ProductID,
		SupplierID:  data.SupplierID,
		Supplier:    toSupplierDomain(data.Supplier),
		UnitPrice:   data.UnitPrice,
		StockStatus: entity.StockStatus(data.StockStatus),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.SupplierListing) *model.SupplierListingModel {
	return &model.SupplierListingModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		SupplierID:  data.SupplierID,
		UnitPrice:   data.UnitPrice,
		StockStatus: string(data.StockStatus),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toDiscountDomain(data *model.DiscountModel) *entity.Discount {
	return &entity.Discount{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SupplierID: data.SupplierID,
		Type:       entity.DiscountType(data.Type),
		Value:      data.Value,
		ValidFrom:  data.ValidFrom,
		ValidUntil: data.ValidUntil,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDiscountDomain(data *entity.Discount) *model.DiscountModel {
	return &model.DiscountModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SupplierID: data.SupplierID,
		Type:       string(data.Type),
		Value:      data.Value,
		ValidFrom:  data.ValidFrom,
		ValidUntil: data.ValidUntil,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
