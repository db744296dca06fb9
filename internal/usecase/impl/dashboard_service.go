package impl

import (
	"context"
	"log/slog"

	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/errors"
	"dukasync/internal/usecase"

	"go.uber.org/fx"
)

// dashboardService implements usecase.DashboardUsecase.
type dashboardService struct {
	logger *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{logger: params.Logger}
}

// Shell builds the dashboard of the role.
func (s *dashboardService) Shell(ctx context.Context, role entity.Role, session *entity.Session, profile *entity.UserProfile) (*usecase.DashboardShell, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	shell := &usecase.DashboardShell{
		Role: role,
		Path: role.DashboardPath(),
	}

	switch role {
	case entity.RoleAdmin:
		shell.Title = "Admin workspace"
		shell.Greeting = "For founders to oversee teams, data, and approvals."
		shell.Sections = []string{"Access control", "Teams & invites", "Approvals"}
	case entity.RoleWholesaler:
		shell.Title = "Wholesaler workspace"
		shell.Greeting = "Coordinate bulk inventory, pricing, and deliveries to shops."
		shell.Sections = []string{"Shops served", "Open invoices", "Dispatch overview", "Stock alerts"}
	case entity.RoleShopkeeper:
		shell.Title = "Shopkeeper workspace"
		shell.Greeting = "Day-to-day workflows for managing stock and sales."
		shell.Sections = []string{"Stock levels", "Purchase orders", "Sales insights"}
	case entity.RoleCustomer:
		shell.Title = "Shopping hub"
		shell.Greeting = "Track your orders, loyalty, and explore nearby shops."
		shell.Sections = []string{"Recent orders", "Recommended shops", "Loyalty points"}
	case entity.RoleNone:
		return nil, errors.WithStack(domainerrors.ErrRoleNotAllowed)
	default:
		return nil, errors.WithStack(domainerrors.ErrRoleNotAllowed)
	}

	if profile != nil {
		shell.BusinessName = profile.BusinessName
		shell.ShopName = profile.ShopName
		shell.County = profile.County
		shell.Constituency = profile.Constituency
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Dashboard shell built",
		slog.String("uid", session.UserID),
		slog.String("role", role.String()),
	)

	return shell, nil
}
