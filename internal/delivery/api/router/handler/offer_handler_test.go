package handler

import (
	"net/http"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferHandler_CreateListing_Duplicate(t *testing.T) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: discardLogger()})
	cl := vendor()
	productID := uuid.New()

	offerUC.EXPECT().CreateListing(mock.Anything, *cl, mock.MatchedBy(func(in *usecase.ListingInput) bool {
		return in.ProductID == productID && in.UnitPrice.Equal(decimal.RequireFromString("3.20"))
	})).Return(nil, domainerrors.ErrListingAlreadyExists).Once()

	c, rec := newContext(http.MethodPost, "/", `{"product_id":"`+productID.String()+`","price":"3.20"}`, cl)
	require.NoError(t, h.CreateListing(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOfferHandler_CreateDiscount(t *testing.T) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: discardLogger()})
	cl := vendor()
	productID := uuid.New()

	offerUC.EXPECT().CreateDiscount(mock.Anything, *cl, productID, mock.MatchedBy(func(in *usecase.DiscountInput) bool {
		return in.Type == "fixed" && in.Value.Equal(decimal.NewFromInt(1)) && in.ValidUntil.After(in.ValidFrom)
	})).Return(&entity.Discount{ID: uuid.New(), ProductID: productID}, nil).Once()

	body := `{"product_id":"` + productID.String() + `","type":"fixed","value":"1",` +
		`"valid_from":"2026-05-01T00:00:00Z","valid_until":"2026-05-08T00:00:00Z"}`
	c, rec := newContext(http.MethodPost, "/", body, cl)
	require.NoError(t, h.CreateDiscount(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOfferHandler_CreateDiscount_UnknownType(t *testing.T) {
	h := NewOfferHandler(OfferHandlerParams{OfferUC: mockUsecase.NewMockOfferUsecase(t), Logger: discardLogger()})

	body := `{"product_id":"` + uuid.NewString() + `","type":"bogo","value":"1"}`
	c, rec := newContext(http.MethodPost, "/", body, vendor())
	require.NoError(t, h.CreateDiscount(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
