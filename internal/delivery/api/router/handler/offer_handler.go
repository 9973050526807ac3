package handler

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves vendor listings and discounts.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateDiscountRequest binds a discount for a product
type CreateDiscountRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	usecase.DiscountInput
}

// MyListings lists the caller's listings
func (h *OfferHandler) MyListings(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listings, err := h.offerUC.MyListings(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

// CreateListing adds the caller's price for a product
func (h *OfferHandler) CreateListing(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req usecase.ListingInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	listing, err := h.offerUC.CreateListing(c.Request().Context(), cl, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing)
}

// UpdateListing replaces the price and stock of a listing
func (h *OfferHandler) UpdateListing(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listingID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.ListingInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	listing, err := h.offerUC.UpdateListing(c.Request().Context(), cl, listingID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// DeleteListing removes a listing of the caller
func (h *OfferHandler) DeleteListing(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	listingID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.offerUC.DeleteListing(c.Request().Context(), cl, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MyDiscounts lists discounts on the caller's products
func (h *OfferHandler) MyDiscounts(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	discounts, err := h.offerUC.MyDiscounts(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discounts)
}

// ActiveDiscounts lists every discount active now
func (h *OfferHandler) ActiveDiscounts(c echo.Context) error {
	discounts, err := h.offerUC.ActiveDiscounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discounts)
}

// CreateDiscount adds a discount to a product the caller lists
func (h *OfferHandler) CreateDiscount(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req CreateDiscountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	discount, err := h.offerUC.CreateDiscount(c.Request().Context(), cl, req.ProductID, &req.DiscountInput)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount)
}

// UpdateDiscount replaces a discount of the caller
func (h *OfferHandler) UpdateDiscount(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	discountID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.DiscountInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	discount, err := h.offerUC.UpdateDiscount(c.Request().Context(), cl, discountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount)
}

// DeleteDiscount removes a discount of the caller
func (h *OfferHandler) DeleteDiscount(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	discountID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.offerUC.DeleteDiscount(c.Request().Context(), cl, discountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
