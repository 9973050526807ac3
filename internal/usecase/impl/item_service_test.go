package impl

import (
	"context"
	"testing"
	"time"

	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	mockRepo "ecocart/internal/mocks/repository"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceFixtures struct {
	service     usecase.ItemUsecase
	listRepo    *mockRepo.MockShoppingListRepository
	itemRepo    *mockRepo.MockShoppingItemRepository
	productRepo *mockRepo.MockProductRepository
	pricing     *mockUsecase.MockPricingUsecase
	txManager   *mockRepo.MockTransactionManager
	txFactory   *mockRepo.MockRepositoryFactory
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	fx := itemServiceFixtures{
		listRepo:    mockRepo.NewMockShoppingListRepository(t),
		itemRepo:    mockRepo.NewMockShoppingItemRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		pricing:     mockUsecase.NewMockPricingUsecase(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		txFactory:   mockRepo.NewMockRepositoryFactory(t),
	}

	fx.service = NewItemService(ItemServiceParams{
		ListRepo:    fx.listRepo,
		ItemRepo:    fx.itemRepo,
		ProductRepo: fx.productRepo,
		Pricing:     fx.pricing,
		TxManager:   fx.txManager,
		Clock:       fixedClock{now: referenceNow},
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

// runTransactions makes the transaction manager run the callback against the
// same item repository mock.
func (fx itemServiceFixtures) runTransactions() {
	fx.txFactory.EXPECT().NewShoppingItemRepository().Return(fx.itemRepo).Maybe()
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
}

func newCaller() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
}

func ownedBy(caller entity.Caller) *entity.ShoppingList {
	return &entity.ShoppingList{
		ID:         uuid.New(),
		Name:       "Weekly",
		OwnerID:    caller.UserID,
		PublicID:   uuid.New(),
		SharedWith: []uuid.UUID{},
	}
}

func TestItemService_AddItem_MergesQuantityAndRecomputesTotal(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	product := &entity.Product{ID: uuid.New(), Name: "Milk"}
	quote := &entity.PriceQuote{EffectiveUnitPrice: dec("3.60"), At: referenceNow}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.pricing.EXPECT().ResolvePrice(ctx, product.ID, referenceNow).Return(quote, nil)
	fx.runTransactions()

	// In-memory row keyed by (list, product) to exercise the merge.
	stored := map[[2]uuid.UUID]*entity.ShoppingItem{}
	fx.itemRepo.EXPECT().
		UpsertMerge(ctx, mock.AnythingOfType("entity.ItemUpsert")).
		RunAndReturn(func(_ context.Context, upsert entity.ItemUpsert) (*entity.ShoppingItem, error) {
			key := [2]uuid.UUID{upsert.ListID, upsert.ProductID}
			row, ok := stored[key]
			if !ok {
				row = &entity.ShoppingItem{ID: uuid.New(), ListID: upsert.ListID, ProductID: upsert.ProductID}
				stored[key] = row
			}
			row.Quantity += upsert.Quantity
			copied := *row

			return &copied, nil
		})
	fx.itemRepo.EXPECT().
		UpdateTotal(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, total decimal.Decimal) error {
			for _, row := range stored {
				if row.ID == id {
					row.TotalPrice = total
				}
			}

			return nil
		})

	first, err := fx.service.AddItem(ctx, caller, list.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, "7.20", first.TotalPrice.StringFixed(2))

	second, err := fx.service.AddItem(ctx, caller, list.ID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, "18.00", second.TotalPrice.StringFixed(2))
	assert.Equal(t, product, second.Product)
	require.Len(t, stored, 1)
}

func TestItemService_AddItem_RejectsQuantityOutOfRange(t *testing.T) {
	for _, quantity := range []int{0, -1, constants.MaxItemQuantity + 1} {
		fx := createTestItemService(t)

		_, err := fx.service.AddItem(context.Background(), newCaller(), uuid.New(), uuid.New(), quantity)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "quantity %d", quantity)
	}
}

func TestItemService_AddItem_MergePastCapIsRejected(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	product := &entity.Product{ID: uuid.New(), Name: "Rice"}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.pricing.EXPECT().ResolvePrice(ctx, product.ID, referenceNow).
		Return(&entity.PriceQuote{EffectiveUnitPrice: dec("1.00"), At: referenceNow}, nil)
	fx.runTransactions()
	fx.itemRepo.EXPECT().UpsertMerge(ctx, mock.AnythingOfType("entity.ItemUpsert")).
		Return(&entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, ProductID: product.ID, Quantity: constants.MaxItemQuantity + 4}, nil)

	_, err := fx.service.AddItem(ctx, caller, list.ID, product.ID, 5)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestItemService_AddItem_TotalOverflowIsValidationError(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	product := &entity.Product{ID: uuid.New(), Name: "Caviar"}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.pricing.EXPECT().ResolvePrice(ctx, product.ID, referenceNow).
		Return(&entity.PriceQuote{EffectiveUnitPrice: dec("99999999.00"), At: referenceNow}, nil)
	fx.runTransactions()
	fx.itemRepo.EXPECT().UpsertMerge(ctx, mock.AnythingOfType("entity.ItemUpsert")).
		Return(&entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, ProductID: product.ID, Quantity: 9}, nil)
	fx.itemRepo.EXPECT().UpdateTotal(ctx, mock.Anything, mock.Anything).Return(repository.ErrItemValueOutOfRange)

	_, err := fx.service.AddItem(ctx, caller, list.ID, product.ID, 9)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestItemService_AddItem_SharedListIsReadOnly(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	owner := newCaller()
	sharee := newCaller()
	list := ownedBy(owner)
	list.SharedWith = []uuid.UUID{sharee.UserID}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

	_, err := fx.service.AddItem(ctx, sharee, list.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestItemService_AddItem_InvisibleListIsNotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	list := ownedBy(newCaller())

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

	_, err := fx.service.AddItem(ctx, newCaller(), list.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
}

func TestItemService_AddItem_ProductNotAvailable(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	product := &entity.Product{ID: uuid.New(), Name: "Saffron"}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.pricing.EXPECT().ResolvePrice(ctx, product.ID, referenceNow).Return(nil, domainerrors.ErrNotAvailable)

	_, err := fx.service.AddItem(ctx, caller, list.ID, product.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotAvailable)
}

func TestItemService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	productID := uuid.New()

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, caller, list.ID, productID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestItemService_MarkPurchased_DefaultShelfLife(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}
	want := time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.itemRepo.EXPECT().MarkPurchased(ctx, item.ID, want).Return(nil)

	purchased, err := fx.service.MarkPurchased(ctx, caller, item.ID, nil)
	require.NoError(t, err)

	assert.True(t, purchased.IsChecked)
	require.NotNil(t, purchased.ExpirationDate)
	assert.Equal(t, want, *purchased.ExpirationDate)
	assert.Equal(t, entity.ItemPurchased, purchased.State(referenceNow, 3))
}

func TestItemService_MarkPurchased_ExplicitDateIsTruncated(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}
	expiration := time.Date(2026, time.March, 12, 18, 45, 0, 0, time.UTC)
	want := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.itemRepo.EXPECT().MarkPurchased(ctx, item.ID, want).Return(nil)

	purchased, err := fx.service.MarkPurchased(ctx, caller, item.ID, &expiration)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemExpiringSoon, purchased.State(referenceNow, 3))
}

func TestItemService_MarkPurchased_AlreadyChecked(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1, IsChecked: true}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

	_, err := fx.service.MarkPurchased(ctx, caller, item.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
}

func TestItemService_MarkPurchased_LosesRace(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.itemRepo.EXPECT().MarkPurchased(ctx, item.ID, mock.AnythingOfType("time.Time")).Return(repository.ErrItemAlreadyChecked)

	_, err := fx.service.MarkPurchased(ctx, caller, item.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
}

func TestItemService_MarkPurchased_ItemOnInvisibleList(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	list := ownedBy(newCaller())
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

	_, err := fx.service.MarkPurchased(ctx, newCaller(), item.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity decrease is rejected", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 4}
		quantity := 2

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

		_, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{Quantity: &quantity})
		assert.ErrorIs(t, err, domainerrors.ErrQuantityDecrease)
	})

	t.Run("quantity increase reprices", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, ProductID: uuid.New(), Quantity: 1}
		quantity := 4

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.pricing.EXPECT().QuoteTotal(ctx, item.ProductID, 4, referenceNow).Return(&entity.PriceQuote{}, dec("14.40"), nil)
		fx.itemRepo.EXPECT().
			Update(ctx, item.ID, mock.MatchedBy(func(change entity.ItemChange) bool {
				return *change.Quantity == 4 && change.TotalPrice.Equal(dec("14.40")) && change.ExpirationDate == nil
			})).
			Return(nil)

		updated, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Quantity)
		assert.Equal(t, "14.40", updated.TotalPrice.StringFixed(2))
	})

	t.Run("merge landing after the read keeps the larger quantity", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		stored := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, ProductID: uuid.New(), Quantity: 5, TotalPrice: dec("18.00")}
		quantity := 6

		fx.itemRepo.EXPECT().FindByID(ctx, stored.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.ShoppingItem, error) {
			copied := *stored

			return &copied, nil
		})
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.pricing.EXPECT().
			QuoteTotal(ctx, stored.ProductID, 6, referenceNow).
			RunAndReturn(func(context.Context, uuid.UUID, int, time.Time) (*entity.PriceQuote, decimal.Decimal, error) {
				// another request merges 3 more units into the row meanwhile
				stored.Quantity += 3
				stored.TotalPrice = dec("28.80")

				return &entity.PriceQuote{}, dec("21.60"), nil
			})
		fx.itemRepo.EXPECT().
			Update(ctx, stored.ID, mock.AnythingOfType("entity.ItemChange")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, change entity.ItemChange) error {
				if change.Quantity != nil && stored.Quantity > *change.Quantity {
					return repository.ErrItemQuantityDecrease
				}
				stored.Quantity = *change.Quantity
				stored.TotalPrice = *change.TotalPrice

				return nil
			})

		_, err := fx.service.UpdateItem(ctx, caller, stored.ID, &usecase.UpdateItemInput{Quantity: &quantity})
		assert.ErrorIs(t, err, domainerrors.ErrQuantityDecrease)
		assert.Equal(t, 8, stored.Quantity)
		assert.Equal(t, "28.80", stored.TotalPrice.StringFixed(2))
	})

	t.Run("quantity above cap is rejected", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 2}
		quantity := constants.MaxItemQuantity + 1

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

		_, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{Quantity: &quantity})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unchanged quantity writes nothing", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 3}
		quantity := 3

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

		updated, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
	})

	t.Run("expiration needs a purchased item", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

		_, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{ExpirationDate: datePtr(2026, time.April, 1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("expiration moves on a purchased item", func(t *testing.T) {
		fx := createTestItemService(t)
		caller := newCaller()
		list := ownedBy(caller)
		item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1, IsChecked: true, ExpirationDate: datePtr(2026, time.March, 11)}

		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.itemRepo.EXPECT().
			Update(ctx, item.ID, mock.MatchedBy(func(change entity.ItemChange) bool {
				return change.Quantity == nil && change.ExpirationDate.Equal(*datePtr(2026, time.April, 1))
			})).
			Return(nil)

		updated, err := fx.service.UpdateItem(ctx, caller, item.ID, &usecase.UpdateItemInput{ExpirationDate: datePtr(2026, time.April, 1)})
		require.NoError(t, err)
		assert.Equal(t, *datePtr(2026, time.April, 1), *updated.ExpirationDate)
	})
}

func TestItemService_RemoveItem(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()
	list := ownedBy(caller)
	item := &entity.ShoppingItem{ID: uuid.New(), ListID: list.ID, Quantity: 1}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.itemRepo.EXPECT().Delete(ctx, item.ID).Return(nil)

	require.NoError(t, fx.service.RemoveItem(ctx, caller, item.ID))
}

func TestItemService_ExpiringAndExpiredWindows(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	caller := newCaller()

	expiring := entity.WindowFor(entity.ReminderExpiring, referenceNow, 3)
	expired := entity.WindowFor(entity.ReminderExpired, referenceNow, 3)
	soon := []*entity.ShoppingItem{{ID: uuid.New(), IsChecked: true, ExpirationDate: datePtr(2026, time.March, 12)}}
	past := []*entity.ShoppingItem{{ID: uuid.New(), IsChecked: true, ExpirationDate: datePtr(2026, time.March, 1)}}

	fx.itemRepo.EXPECT().FindByOwnerInWindow(ctx, caller.UserID, expiring).Return(soon, nil)
	fx.itemRepo.EXPECT().FindByOwnerInWindow(ctx, caller.UserID, expired).Return(past, nil)

	gotSoon, err := fx.service.ExpiringItems(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, soon, gotSoon)

	gotPast, err := fx.service.ExpiredItems(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, past, gotPast)
}
