package handler

import (
	"net/http"

	"dukasync/internal/delivery/api/response"
	"dukasync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contactReceivedMessage = "Received! We will reach out with an integration path."

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	Contact usecase.ContactUsecase
}

// ContactHandler serves the public contact form
type ContactHandler struct {
	contact usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contact: params.Contact}
}

// ContactRequest represents the contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submit stores a visitor message
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	if err := h.contact.Submit(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, contactReceivedMessage)
}
