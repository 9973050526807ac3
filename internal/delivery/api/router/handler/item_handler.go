package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/domain/entity"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC     usecase.ItemUsecase
	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ItemHandler serves list items and the fridge.
type ItemHandler struct {
	itemUC     usecase.ItemUsecase
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC:     params.ItemUC,
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// PurchaseRequest carries an optional expiration date (YYYY-MM-DD)
type PurchaseRequest struct {
	ExpirationDate string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateItemRequest carries optional item changes
type UpdateItemRequest struct {
	Quantity       *int   `json:"quantity" validate:"omitempty,gt=0,lte=9999"`
	ExpirationDate string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	// Already validated by the datetime tag
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil
	}

	return &date
}

// UpdateItem changes the quantity or expiration of an item
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	itemID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), cl, itemID, &usecase.UpdateItemInput{
		Quantity:       req.Quantity,
		ExpirationDate: parseDate(req.ExpirationDate),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// RemoveItem deletes an item
func (h *ItemHandler) RemoveItem(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	itemID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.itemUC.RemoveItem(c.Request().Context(), cl, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MarkPurchased moves an item into the fridge
func (h *ItemHandler) MarkPurchased(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	itemID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req PurchaseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.itemUC.MarkPurchased(c.Request().Context(), cl, itemID, parseDate(req.ExpirationDate))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Fridge lists purchased items
func (h *ItemHandler) Fridge(c echo.Context) error {
	return h.listItems(c, h.itemUC.Fridge)
}

// Expiring lists purchased items inside the expiring-soon window
func (h *ItemHandler) Expiring(c echo.Context) error {
	return h.listItems(c, h.itemUC.ExpiringItems)
}

// Expired lists purchased items past their expiration date
func (h *ItemHandler) Expired(c echo.Context) error {
	return h.listItems(c, h.itemUC.ExpiredItems)
}

func (h *ItemHandler) listItems(
	c echo.Context,
	fetch func(context.Context, entity.Caller) ([]*entity.ShoppingItem, error),
) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	items, err := fetch(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// MarkAllExpiringRead flags expiring-soon items as notified
func (h *ItemHandler) MarkAllExpiringRead(c echo.Context) error {
	return h.markAllRead(c, entity.ReminderExpiring)
}

// MarkAllExpiredRead flags expired items as notified
func (h *ItemHandler) MarkAllExpiredRead(c echo.Context) error {
	return h.markAllRead(c, entity.ReminderExpired)
}

func (h *ItemHandler) markAllRead(c echo.Context, kind entity.ReminderKind) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	count, err := h.reminderUC.MarkAllRead(c.Request().Context(), cl, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"updated": count})
}
