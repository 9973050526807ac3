package impl

import (
	"context"
	"strings"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	mockRepo "ecocart/internal/mocks/repository"
	mockSvc "ecocart/internal/mocks/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listServiceFixtures struct {
	service     usecase.ListUsecase
	listRepo    *mockRepo.MockShoppingListRepository
	itemRepo    *mockRepo.MockShoppingItemRepository
	contactRepo *mockRepo.MockContactRepository
	qrcode      *mockSvc.MockQRCodeService
}

func createTestListService(t *testing.T) listServiceFixtures {
	fx := listServiceFixtures{
		listRepo:    mockRepo.NewMockShoppingListRepository(t),
		itemRepo:    mockRepo.NewMockShoppingItemRepository(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewListService(ListServiceParams{
		ListRepo:      fx.listRepo,
		ItemRepo:      fx.itemRepo,
		ContactRepo:   fx.contactRepo,
		QRCodeService: fx.qrcode,
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestListService_CreateList(t *testing.T) {
	fx := createTestListService(t)
	ctx := context.Background()
	caller := newCaller()

	fx.listRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(list *entity.ShoppingList) bool {
			return list.Name == "Weekend BBQ" && list.OwnerID == caller.UserID && list.PublicID != uuid.Nil
		})).
		Return(nil)

	list, err := fx.service.CreateList(ctx, caller, "  Weekend BBQ ")
	require.NoError(t, err)
	assert.Equal(t, "Weekend BBQ", list.Name)
	assert.False(t, list.IsShared)
}

func TestListService_CreateList_InvalidName(t *testing.T) {
	fx := createTestListService(t)

	for _, name := range []string{"", "   ", strings.Repeat("a", 256)} {
		_, err := fx.service.CreateList(context.Background(), newCaller(), name)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestListService_GetList_Visibility(t *testing.T) {
	ctx := context.Background()
	owner := newCaller()
	sharee := newCaller()
	list := ownedBy(owner)
	list.SharedWith = []uuid.UUID{sharee.UserID}
	items := []*entity.ShoppingItem{{ID: uuid.New(), ListID: list.ID, Quantity: 2}}

	t.Run("sharee can read", func(t *testing.T) {
		fx := createTestListService(t)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.itemRepo.EXPECT().FindByList(ctx, list.ID).Return(items, nil)

		got, err := fx.service.GetList(ctx, sharee, list.ID)
		require.NoError(t, err)
		assert.Equal(t, items, got.Items)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		fx := createTestListService(t)
		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

		_, err := fx.service.GetList(ctx, newCaller(), list.ID)
		assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
	})

	t.Run("missing list", func(t *testing.T) {
		fx := createTestListService(t)
		id := uuid.New()
		fx.listRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListNotFound)

		_, err := fx.service.GetList(ctx, owner, id)
		assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
	})
}

func TestListService_RenameList_ShareeForbidden(t *testing.T) {
	fx := createTestListService(t)
	ctx := context.Background()
	owner := newCaller()
	sharee := newCaller()
	list := ownedBy(owner)
	list.SharedWith = []uuid.UUID{sharee.UserID}

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)

	_, err := fx.service.RenameList(ctx, sharee, list.ID, "Mine now")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListService_ShareList(t *testing.T) {
	ctx := context.Background()

	t.Run("contact gains access", func(t *testing.T) {
		fx := createTestListService(t)
		owner := newCaller()
		friend := uuid.New()
		list := ownedBy(owner)

		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.contactRepo.EXPECT().Exists(ctx, owner.UserID, friend).Return(true, nil)
		fx.listRepo.EXPECT().AddShare(ctx, list.ID, friend).Return(nil)

		shared, err := fx.service.ShareList(ctx, owner, list.ID, friend)
		require.NoError(t, err)
		assert.True(t, shared.IsVisibleTo(friend))
		assert.False(t, shared.IsOwnedBy(friend))
	})

	t.Run("non contact is rejected", func(t *testing.T) {
		fx := createTestListService(t)
		owner := newCaller()
		stranger := uuid.New()
		list := ownedBy(owner)

		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.contactRepo.EXPECT().Exists(ctx, owner.UserID, stranger).Return(false, nil)

		_, err := fx.service.ShareList(ctx, owner, list.ID, stranger)
		assert.ErrorIs(t, err, domainerrors.ErrNotContact)
	})

	t.Run("sharing twice is a no-op", func(t *testing.T) {
		fx := createTestListService(t)
		owner := newCaller()
		friend := uuid.New()
		list := ownedBy(owner)
		list.SharedWith = []uuid.UUID{friend}

		fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
		fx.contactRepo.EXPECT().Exists(ctx, owner.UserID, friend).Return(true, nil)

		shared, err := fx.service.ShareList(ctx, owner, list.ID, friend)
		require.NoError(t, err)
		assert.Len(t, shared.SharedWith, 1)
	})

	t.Run("self share is rejected", func(t *testing.T) {
		fx := createTestListService(t)
		owner := newCaller()

		_, err := fx.service.ShareList(ctx, owner, uuid.New(), owner.UserID)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestListService_GetPublicList(t *testing.T) {
	ctx := context.Background()

	t.Run("public view hides share set", func(t *testing.T) {
		fx := createTestListService(t)
		list := ownedBy(newCaller())
		list.IsShared = true
		list.SharedWith = []uuid.UUID{uuid.New()}

		fx.listRepo.EXPECT().FindByPublicID(ctx, list.PublicID).Return(list, nil)
		fx.itemRepo.EXPECT().FindByList(ctx, list.ID).Return([]*entity.ShoppingItem{}, nil)

		got, err := fx.service.GetPublicList(ctx, list.PublicID)
		require.NoError(t, err)
		assert.Nil(t, got.SharedWith)
	})

	t.Run("private list is not found", func(t *testing.T) {
		fx := createTestListService(t)
		list := ownedBy(newCaller())

		fx.listRepo.EXPECT().FindByPublicID(ctx, list.PublicID).Return(list, nil)

		_, err := fx.service.GetPublicList(ctx, list.PublicID)
		assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
	})
}

func TestListService_SetPublicAndQRCode(t *testing.T) {
	fx := createTestListService(t)
	ctx := context.Background()
	owner := newCaller()
	list := ownedBy(owner)

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.listRepo.EXPECT().Update(ctx, list).Return(nil).Once()
	fx.qrcode.EXPECT().GenerateShareQR(list.PublicID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	_, err := fx.service.ShareQRCode(ctx, owner, list.ID)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	updated, err := fx.service.SetPublic(ctx, owner, list.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsShared)

	png, err := fx.service.ShareQRCode(ctx, owner, list.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestListService_DeleteList(t *testing.T) {
	fx := createTestListService(t)
	ctx := context.Background()
	owner := newCaller()
	list := ownedBy(owner)

	fx.listRepo.EXPECT().FindByID(ctx, list.ID).Return(list, nil)
	fx.listRepo.EXPECT().Delete(ctx, list.ID).Return(nil)

	require.NoError(t, fx.service.DeleteList(ctx, owner, list.ID))
}
