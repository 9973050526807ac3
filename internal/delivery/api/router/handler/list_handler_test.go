package handler

import (
	"net/http"
	"strings"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/infra/metrics"
	mockUsecase "ecocart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListHandler(t *testing.T) (*ListHandler, *mockUsecase.MockListUsecase, *mockUsecase.MockItemUsecase, *metrics.Metrics) {
	listUC := mockUsecase.NewMockListUsecase(t)
	itemUC := mockUsecase.NewMockItemUsecase(t)
	m := metrics.New()

	return NewListHandler(ListHandlerParams{
		ListUC:  listUC,
		ItemUC:  itemUC,
		Metrics: m,
		Logger:  discardLogger(),
	}), listUC, itemUC, m
}

func TestListHandler_AddItem(t *testing.T) {
	h, _, itemUC, m := newListHandler(t)
	cl := shopper()
	listID := uuid.New()
	productID := uuid.New()

	itemUC.EXPECT().AddItem(mock.Anything, *cl, listID, productID, 2).
		Return(&entity.ShoppingItem{ID: uuid.New(), ListID: listID, ProductID: productID, Quantity: 2}, nil).Once()

	c, rec := newContext(http.MethodPost, "/", `{"product_id":"`+productID.String()+`","quantity":2}`, cl)
	require.NoError(t, h.AddItem(withParam(c, "id", listID.String())))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), productID.String())

	expected := `
# HELP ecocart_shopping_items_added_total Add-item operations, merged or inserted.
# TYPE ecocart_shopping_items_added_total counter
ecocart_shopping_items_added_total 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "ecocart_shopping_items_added_total"))
}

func TestListHandler_AddItem_DefaultsQuantityToOne(t *testing.T) {
	h, _, itemUC, _ := newListHandler(t)
	cl := shopper()
	listID := uuid.New()
	productID := uuid.New()

	itemUC.EXPECT().AddItem(mock.Anything, *cl, listID, productID, 1).
		Return(&entity.ShoppingItem{ID: uuid.New(), ListID: listID, ProductID: productID, Quantity: 1}, nil).Once()

	c, rec := newContext(http.MethodPost, "/", `{"product_id":"`+productID.String()+`"}`, cl)
	require.NoError(t, h.AddItem(withParam(c, "id", listID.String())))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListHandler_AddItem_Validation(t *testing.T) {
	h, _, _, _ := newListHandler(t)

	tests := []struct {
		name   string
		listID string
		body   string
		code   string
	}{
		{name: "bad list id", listID: "nope", body: `{}`, code: "INVALID_ID"},
		{name: "zero quantity", listID: uuid.NewString(), body: `{"product_id":"` + uuid.NewString() + `","quantity":0}`, code: "VALIDATION_FAILED"},
		{name: "quantity above cap", listID: uuid.NewString(), body: `{"product_id":"` + uuid.NewString() + `","quantity":10000}`, code: "VALIDATION_FAILED"},
		{name: "quantity past int32", listID: uuid.NewString(), body: `{"product_id":"` + uuid.NewString() + `","quantity":2147483648}`, code: "VALIDATION_FAILED"},
		{name: "missing product", listID: uuid.NewString(), body: `{"quantity":1}`, code: "VALIDATION_FAILED"},
		{name: "malformed json", listID: uuid.NewString(), body: `{"quantity":`, code: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/", tt.body, shopper())
			require.NoError(t, h.AddItem(withParam(c, "id", tt.listID)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}

func TestListHandler_GetList_NotVisible(t *testing.T) {
	h, listUC, _, _ := newListHandler(t)
	cl := shopper()
	listID := uuid.New()

	listUC.EXPECT().GetList(mock.Anything, *cl, listID).Return(nil, domainerrors.ErrListNotFound).Once()

	c, rec := newContext(http.MethodGet, "/", "", cl)
	require.NoError(t, h.GetList(withParam(c, "id", listID.String())))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListHandler_RequiresCaller(t *testing.T) {
	h, _, _, _ := newListHandler(t)

	c, rec := newContext(http.MethodGet, "/", "", nil)
	require.NoError(t, h.ListOwned(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListHandler_ShareQRCode(t *testing.T) {
	h, listUC, _, _ := newListHandler(t)
	cl := shopper()
	listID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	listUC.EXPECT().ShareQRCode(mock.Anything, *cl, listID).Return(png, nil).Once()

	c, rec := newContext(http.MethodGet, "/", "", cl)
	require.NoError(t, h.ShareQRCode(withParam(c, "id", listID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestListHandler_GetPublicList(t *testing.T) {
	h, listUC, _, _ := newListHandler(t)
	publicID := uuid.New()

	listUC.EXPECT().GetPublicList(mock.Anything, publicID).
		Return(&entity.ShoppingList{ID: uuid.New(), Name: "Weekend", PublicID: publicID, IsShared: true}, nil).Once()

	c, rec := newContext(http.MethodGet, "/", "", nil)
	require.NoError(t, h.GetPublicList(withParam(c, "publicId", publicID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weekend")
}
