package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockSvc "ecocart/internal/mocks/service"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	catalogUC *mockUsecase.MockCatalogUsecase
	pricingUC *mockUsecase.MockPricingUsecase
	clock     *mockSvc.MockClock
}

func newCatalogHandler(t *testing.T) (*CatalogHandler, catalogMocks) {
	m := catalogMocks{
		catalogUC: mockUsecase.NewMockCatalogUsecase(t),
		pricingUC: mockUsecase.NewMockPricingUsecase(t),
		clock:     mockSvc.NewMockClock(t),
	}

	return NewCatalogHandler(CatalogHandlerParams{
		CatalogUC: m.catalogUC,
		PricingUC: m.pricingUC,
		Clock:     m.clock,
		Logger:    discardLogger(),
	}), m
}

func TestCatalogHandler_SearchProducts_Filter(t *testing.T) {
	h, m := newCatalogHandler(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).Once()

	m.catalogUC.EXPECT().SearchProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.CategoryCode == "dairy" &&
			f.MinPrice != nil && f.MinPrice.Equal(decimal.RequireFromString("1.5")) &&
			f.MaxPrice != nil && f.MaxPrice.Equal(decimal.NewFromInt(10)) &&
			f.DiscountedAt != nil && f.DiscountedAt.Equal(now) &&
			f.Sort == entity.SortPriceAsc &&
			f.Limit == maxPageSize && f.Offset == 0
	})).Return([]*entity.Product{{ID: uuid.New(), Name: "Milk"}}, nil).Once()

	c, rec := newContext(http.MethodGet,
		"/?category=dairy&min_price=1.5&max_price=10&discounted=true&sort=price_asc&limit=500&offset=-3", "", shopper())
	require.NoError(t, h.SearchProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Milk")
	assert.Contains(t, rec.Body.String(), `"page":{"limit":100,"offset":0,"count":1}`)
}

func TestCatalogHandler_SearchProducts_BadQuery(t *testing.T) {
	h, _ := newCatalogHandler(t)

	for _, query := range []string{"min_price=abc", "discounted=maybe", "limit=ten"} {
		t.Run(query, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/?"+query, "", shopper())
			require.NoError(t, h.SearchProducts(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_QUERY", decode(t, rec).Error.Code)
		})
	}
}

func TestCatalogHandler_GetPrice(t *testing.T) {
	h, m := newCatalogHandler(t)
	productID := uuid.New()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	quote := &entity.PriceQuote{
		Listing:            &entity.SupplierListing{ProductID: productID, UnitPrice: decimal.RequireFromString("4.00")},
		EffectiveUnitPrice: decimal.RequireFromString("3.60"),
		At:                 now,
	}

	m.clock.EXPECT().Now().Return(now).Once()
	m.pricingUC.EXPECT().QuoteTotal(mock.Anything, productID, 3, now).
		Return(quote, decimal.RequireFromString("10.80"), nil).Once()

	c, rec := newContext(http.MethodGet, "/?quantity=3", "", shopper())
	require.NoError(t, h.GetPrice(withParam(c, "id", productID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"10.8"`)
}

func TestCatalogHandler_GetPrice_Unavailable(t *testing.T) {
	h, m := newCatalogHandler(t)
	productID := uuid.New()
	now := time.Now()

	m.clock.EXPECT().Now().Return(now).Once()
	m.pricingUC.EXPECT().QuoteTotal(mock.Anything, productID, 1, now).
		Return(nil, decimal.Zero, domainerrors.ErrNotAvailable).Once()

	c, rec := newContext(http.MethodGet, "/", "", shopper())
	require.NoError(t, h.GetPrice(withParam(c, "id", productID.String())))

	assert.Equal(t, domainerrors.ErrNotAvailable.HTTPCode(), rec.Code)
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	h, m := newCatalogHandler(t)
	cl := vendor()

	m.catalogUC.EXPECT().CreateProduct(mock.Anything, *cl, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Name == "Oat milk" && in.CategoryCode == "dairy" &&
			in.UnitPrice.Equal(decimal.RequireFromString("2.49")) &&
			in.Discount != nil && in.Discount.Type == "percentage"
	})).Return(&usecase.ProductDetail{Product: &entity.Product{ID: uuid.New(), Name: "Oat milk"}}, nil).Once()

	body := `{"name":"Oat milk","category":"dairy","price":"2.49",
		"discount":{"type":"percentage","value":"10","valid_from":"2026-05-01T00:00:00Z","valid_until":"2026-05-08T00:00:00Z"}}`
	c, rec := newContext(http.MethodPost, "/", body, cl)
	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCatalogHandler_UploadImage(t *testing.T) {
	h, m := newCatalogHandler(t)
	cl := vendor()
	productID := uuid.New()
	content := []byte("\x89PNG fake image")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="image"; filename="milk.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	m.catalogUC.EXPECT().
		UploadProductImage(mock.Anything, *cl, productID, "image/png", int64(len(content)), mock.Anything).
		Return(&entity.Product{ID: productID, ImageKey: "products/x.png"}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetCaller(c, *cl)

	require.NoError(t, h.UploadImage(withParam(c, "id", productID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_GetImage(t *testing.T) {
	h, m := newCatalogHandler(t)
	productID := uuid.New()

	m.catalogUC.EXPECT().OpenProductImage(mock.Anything, productID).Return(&usecase.ProductImage{
		Body:        io.NopCloser(strings.NewReader("image-bytes")),
		ContentType: "image/jpeg",
	}, nil).Once()

	c, rec := newContext(http.MethodGet, "/", "", nil)
	require.NoError(t, h.GetImage(withParam(c, "id", productID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "image-bytes", rec.Body.String())
}
