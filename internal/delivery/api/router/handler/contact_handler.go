package handler

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the caller's contacts.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// AddContactRequest links a registered user by email
type AddContactRequest struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"max=255"`
}

// ListContacts lists the caller's contacts
func (h *ContactHandler) ListContacts(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// AddContact adds a contact
func (h *ContactHandler) AddContact(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	var req AddContactRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	contact, err := h.contactUC.AddContact(c.Request().Context(), cl, req.Email, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact)
}

// RemoveContact removes a contact
func (h *ContactHandler) RemoveContact(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	contactID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.contactUC.RemoveContact(c.Request().Context(), cl, contactID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
