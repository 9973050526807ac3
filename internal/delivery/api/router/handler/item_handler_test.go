package handler

import (
	"net/http"
	"testing"
	"time"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemHandler(t *testing.T) (*ItemHandler, *mockUsecase.MockItemUsecase, *mockUsecase.MockReminderUsecase) {
	itemUC := mockUsecase.NewMockItemUsecase(t)
	reminderUC := mockUsecase.NewMockReminderUsecase(t)

	return NewItemHandler(ItemHandlerParams{
		ItemUC:     itemUC,
		ReminderUC: reminderUC,
		Logger:     discardLogger(),
	}), itemUC, reminderUC
}

func TestItemHandler_MarkPurchased(t *testing.T) {
	itemID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		wantDate *time.Time
		err      error
		wantCode int
	}{
		{name: "explicit date", body: `{"expiration_date":"2026-03-14"}`, wantDate: &date, wantCode: http.StatusOK},
		{name: "default shelf life", body: `{}`, wantCode: http.StatusOK},
		{name: "already purchased", body: `{}`, err: domainerrors.ErrAlreadyPurchased, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, itemUC, _ := newItemHandler(t)
			cl := shopper()

			call := itemUC.EXPECT().MarkPurchased(mock.Anything, *cl, itemID, tt.wantDate)
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(&entity.ShoppingItem{ID: itemID, IsChecked: true}, nil).Once()
			}

			c, rec := newContext(http.MethodPost, "/", tt.body, cl)
			require.NoError(t, h.MarkPurchased(withParam(c, "id", itemID.String())))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestItemHandler_MarkPurchased_BadDate(t *testing.T) {
	h, _, _ := newItemHandler(t)

	c, rec := newContext(http.MethodPost, "/", `{"expiration_date":"14/03/2026"}`, shopper())
	require.NoError(t, h.MarkPurchased(withParam(c, "id", uuid.NewString())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestItemHandler_UpdateItem(t *testing.T) {
	h, itemUC, _ := newItemHandler(t)
	cl := shopper()
	itemID := uuid.New()

	itemUC.EXPECT().UpdateItem(mock.Anything, *cl, itemID, mock.MatchedBy(func(in *usecase.UpdateItemInput) bool {
		return in.Quantity != nil && *in.Quantity == 1 && in.ExpirationDate == nil
	})).Return(nil, domainerrors.ErrQuantityDecrease).Once()

	c, rec := newContext(http.MethodPatch, "/", `{"quantity":1}`, cl)
	require.NoError(t, h.UpdateItem(withParam(c, "id", itemID.String())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "QUANTITY_DECREASE", decode(t, rec).Error.Code)
}

func TestItemHandler_Expiring(t *testing.T) {
	h, itemUC, _ := newItemHandler(t)
	cl := shopper()

	itemUC.EXPECT().ExpiringItems(mock.Anything, *cl).
		Return([]*entity.ShoppingItem{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()

	c, rec := newContext(http.MethodGet, "/", "", cl)
	require.NoError(t, h.Expiring(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItemHandler_MarkAllExpiredRead(t *testing.T) {
	h, _, reminderUC := newItemHandler(t)
	cl := shopper()

	reminderUC.EXPECT().MarkAllRead(mock.Anything, *cl, entity.ReminderExpired).Return(4, nil).Once()

	c, rec := newContext(http.MethodPost, "/", "", cl)
	require.NoError(t, h.MarkAllExpiredRead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":4}`, string(decode(t, rec).Data))
}
