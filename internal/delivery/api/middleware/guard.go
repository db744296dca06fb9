package middleware

import (
	"log/slog"
	"net/http"

	"dukasync/internal/delivery/api/response"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// resolvingRetryAfter is the Retry-After hint, in seconds, while the session is still resolving.
const resolvingRetryAfter = "1"

// GuardMiddleware turns route guard decisions into responses.
type GuardMiddleware struct {
	guard  usecase.RouteGuardUsecase
	logger *slog.Logger
}

// GuardMiddlewareParams holds dependencies for GuardMiddleware, injected by Fx.
type GuardMiddlewareParams struct {
	fx.In

	Guard  usecase.RouteGuardUsecase
	Logger *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(params GuardMiddlewareParams) *GuardMiddleware {
	return &GuardMiddleware{
		guard:  params.Guard,
		logger: params.Logger,
	}
}

// Require lets the request through only when the guard authorizes the caller.
// With no roles any signed-in caller passes. It must run after SessionMiddleware.Identify.
func (m *GuardMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := m.guard.Authorize(c.Request().Context(), Subject(c), allowed)

			if decision.Allowed {
				deliverycontext.SetGuardDecision(c, decision)

				return next(c)
			}

			return Reject(c, decision)
		}
	}
}

// Reject renders a decision that did not allow the request.
func Reject(c echo.Context, decision entity.GuardDecision) error {
	switch decision.State {
	case entity.GuardUnconfigured:
		return response.AppError(c, domainerrors.ErrServiceNotConfigured)
	case entity.GuardLoading:
		c.Response().Header().Set("Retry-After", resolvingRetryAfter)

		return response.AppError(c, domainerrors.ErrSessionResolving)
	case entity.GuardUnauthenticated:
		return response.Redirect(c, http.StatusUnauthorized,
			domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message(), decision.Redirect)
	case entity.GuardAuthorizedRoleMismatch:
		return response.Redirect(c, http.StatusForbidden,
			domainerrors.ErrRoleNotAllowed.ErrorCode(), domainerrors.ErrRoleNotAllowed.Message(), decision.Redirect)
	case entity.GuardAuthorizedNoRoleCheck, entity.GuardAuthorizedRoleMatch:
		return response.AppError(c, domainerrors.ErrInternalError)
	default:
		return response.AppError(c, domainerrors.ErrInternalError)
	}
}
