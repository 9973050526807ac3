package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecocart/internal/delivery/api/response"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	PricingUC usecase.PricingUsecase
	Clock     service.Clock
	Logger    *slog.Logger
}

// CatalogHandler serves categories, suppliers and products.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	pricingUC usecase.PricingUsecase
	clock     service.Clock
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		pricingUC: params.PricingUC,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Code  string `json:"code" validate:"required,max=64"`
	Label string `json:"label" validate:"required,max=255"`
}

// RegisterSupplierRequest represents the request body for a vendor profile
type RegisterSupplierRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
}

// ListCategories lists every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// CreateCategory handles category creation by admins
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), cl, req.Code, req.Label)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// ListSuppliers lists every supplier
func (h *CatalogHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.catalogUC.ListSuppliers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suppliers)
}

// RegisterSupplier creates the caller's vendor profile
func (h *CatalogHandler) RegisterSupplier(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req RegisterSupplierRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	supplier, err := h.catalogUC.RegisterSupplier(c.Request().Context(), cl, req.CompanyName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, supplier)
}

// SearchProducts lists products matching the query filters
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	filter, err := h.productFilter(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_QUERY", "查詢參數錯誤", err.Error())
	}

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, filter.Limit, filter.Offset)
}

func (h *CatalogHandler) productFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		CategoryCode: c.QueryParam("category"),
		Sort:         entity.ProductSort(c.QueryParam("sort")),
		Limit:        defaultPageSize,
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &price
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &price
	}

	if raw := c.QueryParam("discounted"); raw != "" {
		discounted, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		if discounted {
			now := h.clock.Now()
			filter.DiscountedAt = &now
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Limit = min(max(limit, 1), maxPageSize)
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Offset = max(offset, 0)
	}

	return filter, nil
}

// GetProduct returns a product with the quote of every supplier
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	detail, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetPrice resolves the price a shopper pays now
func (h *CatalogHandler) GetPrice(c echo.Context) error {
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	quantity := 1
	if raw := c.QueryParam("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			return response.BadRequest(c, "INVALID_QUANTITY", "數量必須為正整數")
		}
	}

	quote, total, err := h.pricingUC.QuoteTotal(c.Request().Context(), productID, quantity, h.clock.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"quote":    quote,
		"quantity": quantity,
		"total":    total,
	})
}

// CreateProduct handles a vendor creating a product with its own listing
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req usecase.CreateProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	detail, err := h.catalogUC.CreateProduct(c.Request().Context(), cl, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail)
}

// UploadImage stores the multipart "image" file as the product image
func (h *CatalogHandler) UploadImage(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "請上傳圖片檔案")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", "無法讀取圖片檔案")
	}
	defer file.Close()

	product, err := h.catalogUC.UploadProductImage(
		c.Request().Context(),
		cl,
		productID,
		fileHeader.Header.Get(echo.HeaderContentType),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Product image uploaded",
		slog.String("product_id", productID.String()),
		slog.Int64("size", fileHeader.Size),
	)

	return response.Success(c, http.StatusOK, product)
}

// GetImage streams the product image
func (h *CatalogHandler) GetImage(c echo.Context) error {
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	image, err := h.catalogUC.OpenProductImage(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer image.Body.Close()

	return c.Stream(http.StatusOK, image.ContentType, image.Body)
}
