package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ecocart/config"
	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errQuantityOutOfRange = domainerrors.ErrValidationFailed.WithDetails(
	fmt.Sprintf("quantity must be between 1 and %d", constants.MaxItemQuantity))

type itemService struct {
	listRepo      repository.ShoppingListRepository
	itemRepo      repository.ShoppingItemRepository
	productRepo   repository.ProductRepository
	pricing       usecase.PricingUsecase
	txManager     repository.TransactionManager
	clock         service.Clock
	shelfLifeDays int
	leadDays      int
	logger        *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ListRepo    repository.ShoppingListRepository
	ItemRepo    repository.ShoppingItemRepository
	ProductRepo repository.ProductRepository
	Pricing     usecase.PricingUsecase
	TxManager   repository.TransactionManager
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewItemService creates a new shopping item service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		listRepo:      params.ListRepo,
		itemRepo:      params.ItemRepo,
		productRepo:   params.ProductRepo,
		pricing:       params.Pricing,
		txManager:     params.TxManager,
		clock:         params.Clock,
		shelfLifeDays: params.Config.Shopping.DefaultShelfLifeDays,
		leadDays:      params.Config.Reminder.LeadDays,
		logger:        params.Logger,
	}
}

// AddItem prices the product now and merges it into the list. The merge and the
// total recomputation run in one transaction; the total always reflects the
// stored quantity times the freshly resolved unit price.
func (s *itemService) AddItem(ctx context.Context, caller entity.Caller, listID, productID uuid.UUID, quantity int) (*entity.ShoppingItem, error) {
	if quantity <= 0 || quantity > constants.MaxItemQuantity {
		return nil, errQuantityOutOfRange
	}

	if _, err := ownedList(ctx, s.listRepo, caller, listID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	quote, err := s.pricing.ResolvePrice(ctx, productID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	var item *entity.ShoppingItem
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		itemRepo := txRepoFactory.NewShoppingItemRepository()

		merged, err := itemRepo.UpsertMerge(ctx, entity.ItemUpsert{
			ListID:    listID,
			ProductID: productID,
			Quantity:  quantity,
		})
		if err != nil {
			if errors.Is(err, repository.ErrItemValueOutOfRange) {
				return errQuantityOutOfRange
			}

			return errors.Wrap(err, "failed to upsert shopping item")
		}
		if merged.Quantity > constants.MaxItemQuantity {
			return errQuantityOutOfRange
		}

		total := quote.Total(merged.Quantity)
		if err := itemRepo.UpdateTotal(ctx, merged.ID, total); err != nil {
			if errors.Is(err, repository.ErrItemValueOutOfRange) {
				return domainerrors.ErrValidationFailed.WithDetails("line total is too large")
			}

			return errors.Wrap(err, "failed to update item total")
		}
		merged.TotalPrice = total
		item = merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	item.Product = product
	s.logger.Debug("Item added to list",
		slog.String("list_id", listID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Int("quantity", item.Quantity),
		slog.String("total_price", item.TotalPrice.StringFixed(2)),
	)

	return item, nil
}

// MarkPurchased moves an item into the fridge. Marking twice is rejected.
func (s *itemService) MarkPurchased(ctx context.Context, caller entity.Caller, itemID uuid.UUID, expiration *time.Time) (*entity.ShoppingItem, error) {
	item, _, err := ownedItem(ctx, s.listRepo, s.itemRepo, caller, itemID)
	if err != nil {
		return nil, err
	}

	if item.IsChecked {
		return nil, domainerrors.ErrAlreadyPurchased
	}

	var date time.Time
	if expiration != nil {
		date = entity.DateOf(*expiration)
	} else {
		date = entity.DateOf(s.clock.Now()).AddDate(0, 0, s.shelfLifeDays)
	}

	if err := s.itemRepo.MarkPurchased(ctx, itemID, date); err != nil {
		switch {
		case errors.Is(err, repository.ErrItemAlreadyChecked):
			return nil, domainerrors.ErrAlreadyPurchased
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, domainerrors.ErrItemNotFound
		default:
			return nil, errors.Wrap(err, "failed to mark item purchased")
		}
	}

	item.IsChecked = true
	item.ExpirationDate = &date

	return item, nil
}

// UpdateItem grows the quantity or moves the expiration date of a purchased item.
// The stored row is the authority on quantity: a merge that raised it after the
// read makes the write fail instead of shrinking it.
func (s *itemService) UpdateItem(ctx context.Context, caller entity.Caller, itemID uuid.UUID, input *usecase.UpdateItemInput) (*entity.ShoppingItem, error) {
	item, _, err := ownedItem(ctx, s.listRepo, s.itemRepo, caller, itemID)
	if err != nil {
		return nil, err
	}

	var change entity.ItemChange

	if input.Quantity != nil && *input.Quantity != item.Quantity {
		if *input.Quantity < item.Quantity {
			return nil, domainerrors.ErrQuantityDecrease
		}
		if *input.Quantity > constants.MaxItemQuantity {
			return nil, errQuantityOutOfRange
		}

		_, total, err := s.pricing.QuoteTotal(ctx, item.ProductID, *input.Quantity, s.clock.Now())
		if err != nil {
			return nil, err
		}
		change.Quantity = input.Quantity
		change.TotalPrice = &total
	}

	if input.ExpirationDate != nil {
		if !item.IsChecked {
			return nil, domainerrors.ErrValidationFailed.WithDetails("only purchased items carry an expiration date")
		}
		date := entity.DateOf(*input.ExpirationDate)
		change.ExpirationDate = &date
	}

	if change.IsEmpty() {
		return item, nil
	}

	if err := s.itemRepo.Update(ctx, item.ID, change); err != nil {
		switch {
		case errors.Is(err, repository.ErrItemQuantityDecrease):
			return nil, domainerrors.ErrQuantityDecrease.WithDetails("the item was updated concurrently")
		case errors.Is(err, repository.ErrItemValueOutOfRange):
			return nil, domainerrors.ErrValidationFailed.WithDetails("line total is too large")
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, domainerrors.ErrItemNotFound
		default:
			return nil, errors.Wrap(err, "failed to update shopping item")
		}
	}

	if change.Quantity != nil {
		item.Quantity = *change.Quantity
		item.TotalPrice = *change.TotalPrice
	}
	if change.ExpirationDate != nil {
		item.ExpirationDate = change.ExpirationDate
	}

	return item, nil
}

func (s *itemService) RemoveItem(ctx context.Context, caller entity.Caller, itemID uuid.UUID) error {
	if _, _, err := ownedItem(ctx, s.listRepo, s.itemRepo, caller, itemID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to delete shopping item")
	}

	return nil
}

func (s *itemService) Fridge(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error) {
	items, err := s.itemRepo.FindCheckedByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find fridge items")
	}

	return items, nil
}

func (s *itemService) ExpiringItems(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error) {
	return s.itemsInWindow(ctx, caller, entity.ReminderExpiring)
}

func (s *itemService) ExpiredItems(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingItem, error) {
	return s.itemsInWindow(ctx, caller, entity.ReminderExpired)
}

func (s *itemService) itemsInWindow(ctx context.Context, caller entity.Caller, kind entity.ReminderKind) ([]*entity.ShoppingItem, error) {
	window := entity.WindowFor(kind, s.clock.Now(), s.leadDays)

	items, err := s.itemRepo.FindByOwnerInWindow(ctx, caller.UserID, window)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s items", kind)
	}

	return items, nil
}
