package postgres

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSupplier
		}

		return errors.Wrap(err, "failed to create supplier")
	}

	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *supplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *supplierRepository) findOne(ctx context.Context, query string, arg any) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel

	if err := repo.db.WithContext(ctx).Order("company_name ASC").Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Update("company_name", supplier.CompanyName)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindByCode(ctx context.Context, code string) (*entity.Category, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *categoryRepository) findOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).Order("code ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// --- Mapper Functions ---

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:          data.ID,
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	return &model.SupplierModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:    data.ID,
		Code:  data.Code,
		Label: data.Label,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:    data.ID,
		Code:  data.Code,
		Label: data.Label,
	}
}
