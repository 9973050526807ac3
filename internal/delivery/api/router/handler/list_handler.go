package handler

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/infra/metrics"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListHandlerParams holds dependencies for ListHandler, injected by Fx.
type ListHandlerParams struct {
	fx.In

	ListUC  usecase.ListUsecase
	ItemUC  usecase.ItemUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// ListHandler serves shopping lists and their sharing.
type ListHandler struct {
	listUC  usecase.ListUsecase
	itemUC  usecase.ItemUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewListHandler is the constructor for ListHandler
func NewListHandler(params ListHandlerParams) *ListHandler {
	return &ListHandler{
		listUC:  params.ListUC,
		itemUC:  params.ItemUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// ListNameRequest names a list
type ListNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ShareListRequest grants a contact read access
type ShareListRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// SetPublicRequest toggles the public view
type SetPublicRequest struct {
	IsShared bool `json:"is_shared"`
}

// AddItemRequest adds a product to a list. A missing quantity means one.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  *int      `json:"quantity" validate:"omitempty,gt=0,lte=9999"`
}

// ListOwned lists the caller's lists
func (h *ListHandler) ListOwned(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	lists, err := h.listUC.ListOwned(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lists)
}

// ListSharedWithMe lists the lists other users shared with the caller
func (h *ListHandler) ListSharedWithMe(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	lists, err := h.listUC.ListSharedWithMe(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lists)
}

// CreateList creates an empty list
func (h *ListHandler) CreateList(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req ListNameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	list, err := h.listUC.CreateList(c.Request().Context(), cl, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, list)
}

// GetList returns a visible list with its items
func (h *ListHandler) GetList(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	list, err := h.listUC.GetList(c.Request().Context(), cl, listID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// RenameList renames an owned list
func (h *ListHandler) RenameList(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ListNameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	list, err := h.listUC.RenameList(c.Request().Context(), cl, listID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// DeleteList deletes an owned list and its items
func (h *ListHandler) DeleteList(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.listUC.DeleteList(c.Request().Context(), cl, listID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ShareList shares an owned list with a contact
func (h *ListHandler) ShareList(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ShareListRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	list, err := h.listUC.ShareList(c.Request().Context(), cl, listID, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// SetPublic toggles the public read-only view
func (h *ListHandler) SetPublic(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req SetPublicRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	list, err := h.listUC.SetPublic(c.Request().Context(), cl, listID, req.IsShared)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// ShareQRCode renders the public link of a list as PNG
func (h *ListHandler) ShareQRCode(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	png, err := h.listUC.ShareQRCode(c.Request().Context(), cl, listID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddItem prices a product and merges it into the list
func (h *ListHandler) AddItem(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req AddItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.itemUC.AddItem(c.Request().Context(), cl, listID, req.ProductID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.metrics.ItemAdded()

	return response.Success(c, http.StatusCreated, item)
}

// GetPublicList serves the read-only view of a public list
func (h *ListHandler) GetPublicList(c echo.Context) error {
	publicID, ok, err := pathID(c, "publicId")
	if !ok {
		return err
	}

	list, err := h.listUC.GetPublicList(c.Request().Context(), publicID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}
