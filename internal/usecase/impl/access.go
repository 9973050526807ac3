package impl

import (
	"context"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// visibleList loads a list the caller owns or that is shared with them.
// Lists the caller cannot see are reported as missing.
func visibleList(ctx context.Context, listRepo repository.ShoppingListRepository, caller entity.Caller, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list")
	}

	if !list.IsVisibleTo(caller.UserID) {
		return nil, domainerrors.ErrListNotFound
	}

	return list, nil
}

// ownedList loads a list for a write. Sharees get Forbidden.
func ownedList(ctx context.Context, listRepo repository.ShoppingListRepository, caller entity.Caller, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := visibleList(ctx, listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	if !list.IsOwnedBy(caller.UserID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the list owner may change it")
	}

	return list, nil
}

// ownedItem loads an item together with its list for a write.
func ownedItem(ctx context.Context, listRepo repository.ShoppingListRepository, itemRepo repository.ShoppingItemRepository, caller entity.Caller, itemID uuid.UUID) (*entity.ShoppingItem, *entity.ShoppingList, error) {
	item, err := itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, nil, domainerrors.ErrItemNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find shopping item")
	}

	list, err := ownedList(ctx, listRepo, caller, item.ListID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrListNotFound) {
			return nil, nil, domainerrors.ErrItemNotFound
		}

		return nil, nil, err
	}

	return item, list, nil
}
