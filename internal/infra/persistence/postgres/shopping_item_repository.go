package postgres

import (
	"context"
	"strings"
	"time"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const upsertMergeSQL = `
INSERT INTO shopping_items (list_id, product_id, quantity, is_checked, reminder_sent, total_price, created_at, updated_at)
VALUES (?, ?, ?, false, false, 0, ?, ?)
ON CONFLICT (list_id, product_id)
DO UPDATE SET quantity = shopping_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
RETURNING *`

// shoppingItemRepository implements the repository.ShoppingItemRepository interface.
type shoppingItemRepository struct {
	db *gorm.DB
}

func NewShoppingItemRepository(db *gorm.DB) repository.ShoppingItemRepository {
	return &shoppingItemRepository{db: db}
}

// UpsertMerge relies on the (list_id, product_id) unique index, so concurrent
// adds of the same product sum their quantities instead of racing.
func (repo *shoppingItemRepository) UpsertMerge(ctx context.Context, upsert entity.ItemUpsert) (*entity.ShoppingItem, error) {
	now := time.Now().UTC()

	var itemM model.ShoppingItemModel
	result := repo.db.WithContext(ctx).
		Raw(upsertMergeSQL, upsert.ListID, upsert.ProductID, upsert.Quantity, now, now).
		Scan(&itemM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrListNotFound
		}
		if isOutOfRange(result.Error) {
			return nil, repository.ErrItemValueOutOfRange
		}

		return nil, errors.Wrap(result.Error, "failed to upsert shopping item")
	}

	return toShoppingItemDomain(&itemM), nil
}

func (repo *shoppingItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingItem, error) {
	var itemM model.ShoppingItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product.Category").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping item")
	}

	return toShoppingItemDomain(&itemM), nil
}

func (repo *shoppingItemRepository) FindByList(ctx context.Context, listID uuid.UUID) ([]*entity.ShoppingItem, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC, id ASC"))
}

func (repo *shoppingItemRepository) UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_price": total,
			"updated_at":  time.Now().UTC(),
		})

	if isOutOfRange(result.Error) {
		return repository.ErrItemValueOutOfRange
	}

	return itemUpdateResult(result, "failed to update item total")
}

// Update guards the quantity in the WHERE clause so a merge that landed after
// the caller read the row is never overwritten with a smaller value.
func (repo *shoppingItemRepository) Update(ctx context.Context, id uuid.UUID, change entity.ItemChange) error {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	query := repo.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ?", id)

	if change.Quantity != nil {
		updates["quantity"] = *change.Quantity
		query = query.Where("quantity <= ?", *change.Quantity)
	}
	if change.TotalPrice != nil {
		updates["total_price"] = *change.TotalPrice
	}
	if change.ExpirationDate != nil {
		updates["expiration_date"] = dateOnly(change.ExpirationDate)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		if isOutOfRange(result.Error) {
			return repository.ErrItemValueOutOfRange
		}

		return errors.Wrap(result.Error, "failed to update shopping item")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check shopping item")
	}
	if count == 0 || change.Quantity == nil {
		return repository.ErrItemNotFound
	}

	return repository.ErrItemQuantityDecrease
}

// MarkPurchased only touches rows that are still unchecked.
func (repo *shoppingItemRepository) MarkPurchased(ctx context.Context, id uuid.UUID, expiration time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ? AND is_checked = ?", id, false).
		Updates(map[string]any{
			"is_checked":      true,
			"expiration_date": entity.DateOf(expiration),
			"updated_at":      time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark item purchased")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check shopping item")
	}
	if count == 0 {
		return repository.ErrItemNotFound
	}

	return repository.ErrItemAlreadyChecked
}

func (repo *shoppingItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShoppingItemModel{})

	return itemUpdateResult(result, "failed to delete shopping item")
}

// FindCheckedByOwner returns the checked items of lists owned by ownerID.
func (repo *shoppingItemRepository) FindCheckedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingItem, error) {
	return repo.findMany(ownedBy(repo.db.WithContext(ctx), ownerID).
		Where("is_checked = ?", true).
		Order("expiration_date ASC NULLS LAST, id ASC"))
}

// FindByOwnerInWindow returns checked items of ownerID's lists whose expiration date is in window.
func (repo *shoppingItemRepository) FindByOwnerInWindow(ctx context.Context, ownerID uuid.UUID, window entity.ReminderWindow) ([]*entity.ShoppingItem, error) {
	where, args := windowCondition("expiration_date", window)

	return repo.findMany(ownedBy(repo.db.WithContext(ctx), ownerID).
		Where("is_checked = ?", true).
		Where(where, args...).
		Order("expiration_date ASC, id ASC"))
}

// ClaimReminders flips reminder_sent and reads back the claimed rows in one statement,
// so overlapping sweeps never claim the same item twice.
func (repo *shoppingItemRepository) ClaimReminders(ctx context.Context, window entity.ReminderWindow, ownerID *uuid.UUID) ([]*entity.ClaimedReminder, error) {
	where, args := windowCondition("si.expiration_date", window)

	var sql strings.Builder
	sql.WriteString(`
WITH claimed AS (
	UPDATE shopping_items si
	SET reminder_sent = true, updated_at = NOW()
	FROM shopping_lists sl
	WHERE si.list_id = sl.id
		AND si.reminder_sent = false
		AND si.is_checked = true
		AND si.expiration_date IS NOT NULL
		AND `)
	sql.WriteString(where)
	if ownerID != nil {
		sql.WriteString(" AND sl.owner_id = ?")
		args = append(args, *ownerID)
	}
	sql.WriteString(`
	RETURNING si.id, si.list_id, si.product_id, si.expiration_date, sl.owner_id
)
SELECT c.id AS item_id, c.list_id, c.owner_id, p.name AS product_name, c.expiration_date
FROM claimed c
JOIN products p ON p.id = c.product_id
ORDER BY c.expiration_date ASC, c.id ASC`)

	var rows []claimedReminderRow
	if err := repo.db.WithContext(ctx).Raw(sql.String(), args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to claim reminders")
	}

	claimed := make([]*entity.ClaimedReminder, 0, len(rows))
	for _, row := range rows {
		claimed = append(claimed, &entity.ClaimedReminder{
			ItemID:         row.ItemID,
			ListID:         row.ListID,
			OwnerID:        row.OwnerID,
			ProductName:    row.ProductName,
			ExpirationDate: row.ExpirationDate,
		})
	}

	return claimed, nil
}

type claimedReminderRow struct {
	ItemID         uuid.UUID
	ListID         uuid.UUID
	OwnerID        uuid.UUID
	ProductName    string
	ExpirationDate time.Time
}

// CountCategoriesForOwner counts items of ownerID's lists per product category.
func (repo *shoppingItemRepository) CountCategoriesForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CategoryCount, error) {
	var rows []*entity.CategoryCount

	if err := repo.db.WithContext(ctx).
		Table("shopping_items si").
		Select("c.id AS category_id, c.code AS code, COUNT(*) AS count").
		Joins("JOIN shopping_lists sl ON sl.id = si.list_id").
		Joins("JOIN products p ON p.id = si.product_id").
		Joins("JOIN categories c ON c.id = p.category_id").
		Where("sl.owner_id = ?", ownerID).
		Group("c.id, c.code").
		Order("count DESC, c.code ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	return rows, nil
}

// FindProductIDsForOwner returns the distinct product ids in ownerID's lists.
func (repo *shoppingItemRepository) FindProductIDsForOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := ownedBy(repo.db.WithContext(ctx).Model(&model.ShoppingItemModel{}), ownerID).
		Distinct().
		Pluck("product_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find owned product ids")
	}

	return ids, nil
}

// TopProducts ranks products by number of item rows.
func (repo *shoppingItemRepository) TopProducts(ctx context.Context, limit int) ([]*entity.ProductPopularity, error) {
	var rows []*entity.ProductPopularity

	if err := repo.db.WithContext(ctx).
		Table("shopping_items si").
		Select("p.id AS product_id, p.name AS product_name, COUNT(*) AS count").
		Joins("JOIN products p ON p.id = si.product_id").
		Group("p.id, p.name").
		Order("count DESC, p.name ASC, p.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	return rows, nil
}

func (repo *shoppingItemRepository) findMany(query *gorm.DB) ([]*entity.ShoppingItem, error) {
	var itemModels []*model.ShoppingItemModel

	if err := query.Preload("Product.Category").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shopping items")
	}

	items := make([]*entity.ShoppingItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toShoppingItemDomain(itemM))
	}

	return items, nil
}

func ownedBy(query *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return query.Where("list_id IN (SELECT sl.id FROM shopping_lists sl WHERE sl.owner_id = ?)", ownerID)
}

// windowCondition renders a reminder window as a date-typed SQL predicate.
func windowCondition(column string, window entity.ReminderWindow) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if window.From != nil {
		conditions = append(conditions, column+" >= ?::date")
		args = append(args, window.From.Format(time.DateOnly))
	}
	if window.Exclusive {
		conditions = append(conditions, column+" < ?::date")
	} else {
		conditions = append(conditions, column+" <= ?::date")
	}
	args = append(args, window.Until.Format(time.DateOnly))

	return strings.Join(conditions, " AND "), args
}

func itemUpdateResult(result *gorm.DB, message string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, message)
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)

	return &d
}

// --- Mapper Functions ---

func toShoppingItemDomain(data *model.ShoppingItemModel) *entity.ShoppingItem {
	var product *entity.Product
	if data.Product != nil {
		product = toProductDomain(data.Product)
	}

	return &entity.ShoppingItem{
		ID:             data.ID,
		ListID:         data.ListID,
		ProductID:      data.ProductID,
		Product:        product,
		Quantity:       data.Quantity,
		IsChecked:      data.IsChecked,
		ExpirationDate: data.ExpirationDate,
		ReminderSent:   data.ReminderSent,
		TotalPrice:     data.TotalPrice,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
