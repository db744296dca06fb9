package handler

import (
	"net/http"

	"dukasync/internal/delivery/api/middleware"
	"dukasync/internal/delivery/api/response"
	"dukasync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	Guard usecase.RouteGuardUsecase
}

// NavigationHandler answers route guard decisions for client routes
type NavigationHandler struct {
	guard usecase.RouteGuardUsecase
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{guard: params.Guard}
}

// Navigate evaluates ?path= for the caller. The decision is always returned with 200;
// the client follows Redirect or retries while State is loading.
func (h *NavigationHandler) Navigate(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return response.BadRequest(c, "MISSING_PATH", "The path query parameter is required.")
	}

	decision := h.guard.Navigate(c.Request().Context(), middleware.Subject(c), path)

	return response.Success(c, http.StatusOK, decision)
}
