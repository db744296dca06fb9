package handler

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

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	Dashboards usecase.DashboardUsecase
	Sessions   usecase.SessionUsecase
	Roles      usecase.RoleUsecase
	Logger     *slog.Logger
}

// DashboardHandler serves dashboard shells behind the route guard
type DashboardHandler struct {
	dashboards usecase.DashboardUsecase
	sessions   usecase.SessionUsecase
	roles      usecase.RoleUsecase
	logger     *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboards: params.Dashboards,
		sessions:   params.Sessions,
		roles:      params.Roles,
		logger:     params.Logger,
	}
}

// DashboardTarget is where a signed-in user's dashboard lives
type DashboardTarget struct {
	Role entity.Role `json:"role,omitempty"`
	Path string      `json:"path"`
}

// Home returns the dashboard path of the caller's role, or the generic dashboard for an unknown role
func (h *DashboardHandler) Home(c echo.Context) error {
	decision, _ := deliverycontext.GetGuardDecision(c)

	return response.Success(c, http.StatusOK, DashboardTarget{
		Role: decision.Role,
		Path: decision.Role.DashboardPath(),
	})
}

// Shell returns the handler serving the dashboard of role. The route must be guarded for that role.
func (h *DashboardHandler) Shell(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var (
			session    *entity.Session
			resolution entity.RoleResolution
		)
		if bearer := deliverycontext.GetBearerSession(c); bearer != nil {
			session = bearer
			resolution = h.roles.ResolveBearer(ctx, bearer)
		} else {
			clientID := deliverycontext.GetClientID(c)
			session = h.sessions.Current(clientID).Session
			resolution = h.roles.Resolve(ctx, clientID, session)
		}

		// The session may have ended between the guard and here.
		if session == nil {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		shell, err := h.dashboards.Shell(ctx, role, session, resolution.Profile)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, shell)
	}
}
