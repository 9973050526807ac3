package postgres

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Upsert mirrors the claims of a token. created_at of a known user is kept
// and read back through RETURNING.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "name", "is_vendor", "is_admin", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "created_at"}, {Name: "updated_at"}}},
		).
		Create(userM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	user.CreatedAt, user.UpdatedAt = userM.CreatedAt, userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByEmail compares case-insensitively. The oldest account wins when two
// identities share an address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Order("created_at ASC"))
}

func (repo *userRepository) first(query *gorm.DB) (*entity.User, error) {
	var userM model.UserModel
	err := query.First(&userM).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrUserNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to load user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountWithLists counts users owning at least one shopping list.
func (repo *userRepository) CountWithLists(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingListModel{}).
		Distinct("owner_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users with lists")
	}

	return count, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		IsVendor:  data.IsVendor,
		IsAdmin:   data.IsAdmin,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		IsVendor:  data.IsVendor,
		IsAdmin:   data.IsAdmin,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
