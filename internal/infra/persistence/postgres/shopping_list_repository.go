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

// shoppingListRepository implements the repository.ShoppingListRepository interface.
type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) repository.ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (repo *shoppingListRepository) Create(ctx context.Context, list *entity.ShoppingList) error {
	listM := fromShoppingListDomain(list)
	if listM.PublicID == uuid.Nil {
		listM.PublicID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("Shares").Create(listM).Error; err != nil {
		return errors.Wrap(err, "failed to create shopping list")
	}

	list.ID = listM.ID
	list.PublicID = listM.PublicID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// FindByID returns the list with its SharedWith ids loaded.
func (repo *shoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shoppingListRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*entity.ShoppingList, error) {
	return repo.findOne(ctx, "public_id = ?", publicID)
}

func (repo *shoppingListRepository) findOne(ctx context.Context, query string, arg any) (*entity.ShoppingList, error) {
	var listM model.ShoppingListModel

	if err := repo.db.WithContext(ctx).
		Preload("Shares").
		Where(query, arg).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list")
	}

	return toShoppingListDomain(&listM), nil
}

func (repo *shoppingListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingList, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (repo *shoppingListRepository) FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("id IN (SELECT ls.list_id FROM list_shares ls WHERE ls.user_id = ?)", userID))
}

func (repo *shoppingListRepository) findMany(query *gorm.DB) ([]*entity.ShoppingList, error) {
	var listModels []*model.ShoppingListModel

	if err := query.Preload("Shares").Order("created_at DESC, id ASC").Find(&listModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shopping lists")
	}

	lists := make([]*entity.ShoppingList, 0, len(listModels))
	for _, listM := range listModels {
		lists = append(lists, toShoppingListDomain(listM))
	}

	return lists, nil
}

// Update stores the name and is_shared flag.
func (repo *shoppingListRepository) Update(ctx context.Context, list *entity.ShoppingList) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingListModel{}).
		Where("id = ?", list.ID).
		Updates(map[string]any{
			"name":       list.Name,
			"is_shared":  list.IsShared,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shopping list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListNotFound
	}

	return nil
}

// Delete removes the list; items and shares cascade through foreign keys.
func (repo *shoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShoppingListModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shopping list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListNotFound
	}

	return nil
}

// AddShare grants userID read access. Granting twice is a no-op.
func (repo *shoppingListRepository) AddShare(ctx context.Context, listID, userID uuid.UUID) error {
	share := &model.ListShareModel{ListID: listID, UserID: userID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(share).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListNotFound
		}

		return errors.Wrap(err, "failed to share shopping list")
	}

	return nil
}

// --- Mapper Functions ---

func toShoppingListDomain(data *model.ShoppingListModel) *entity.ShoppingList {
	sharedWith := make([]uuid.UUID, 0, len(data.Shares))
	for _, share := range data.Shares {
		sharedWith = append(sharedWith, share.UserID)
	}

	return &entity.ShoppingList{
		ID:         data.ID,
		Name:       data.Name,
		OwnerID:    data.OwnerID,
		SharedWith: sharedWith,
		PublicID:   data.PublicID,
		IsShared:   data.IsShared,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromShoppingListDomain(data *entity.ShoppingList) *model.ShoppingListModel {
	return &model.ShoppingListModel{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		PublicID:  data.PublicID,
		IsShared:  data.IsShared,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
