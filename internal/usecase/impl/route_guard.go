package impl

import (
	"context"
	"log/slog"
	"time"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/service"
	"dukasync/internal/usecase"

	"go.uber.org/fx"
)

// routeGuard implements usecase.RouteGuardUsecase.
type routeGuard struct {
	sessions       usecase.SessionUsecase
	roles          usecase.RoleUsecase
	metrics        service.MetricsRecorder
	resolveTimeout time.Duration
	logger         *slog.Logger
}

// RouteGuardParams holds dependencies for RouteGuard, injected by Fx.
type RouteGuardParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Roles    usecase.RoleUsecase
	Metrics  service.MetricsRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRouteGuard creates the route guard.
func NewRouteGuard(params RouteGuardParams) usecase.RouteGuardUsecase {
	return &routeGuard{
		sessions:       params.Sessions,
		roles:          params.Roles,
		metrics:        params.Metrics,
		resolveTimeout: params.Config.Session.ResolveTimeout,
		logger:         params.Logger,
	}
}

// evaluateGuard maps the observed inputs onto a guard decision.
// An empty allowed list means the target only requires a signed-in user.
func evaluateGuard(configured bool, state entity.SessionState, role entity.Role, allowed entity.Roles) entity.GuardDecision {
	var decision entity.GuardDecision

	switch {
	case !configured:
		decision.State = entity.GuardUnconfigured
	case state.Resolving:
		decision.State = entity.GuardLoading
	case state.Session == nil:
		decision.State = entity.GuardUnauthenticated
		decision.Redirect = entity.PathLogin
	case len(allowed) == 0:
		decision.State = entity.GuardAuthorizedNoRoleCheck
		decision.Role = role
	case allowed.Contains(role):
		decision.State = entity.GuardAuthorizedRoleMatch
		decision.Role = role
	default:
		decision.State = entity.GuardAuthorizedRoleMismatch
		decision.Role = role
		decision.Redirect = entity.PathUnauthorized
	}

	decision.Allowed = decision.State.Allows()

	return decision
}

// Authorize evaluates the subject against the allowed roles.
func (g *routeGuard) Authorize(ctx context.Context, subject usecase.GuardSubject, allowed entity.Roles) entity.GuardDecision {
	if !g.sessions.Configured() {
		return g.record(ctx, evaluateGuard(false, entity.SessionState{}, entity.RoleNone, allowed))
	}

	state := g.observe(ctx, subject)
	if state.Resolving || state.Session == nil {
		return g.record(ctx, evaluateGuard(true, state, entity.RoleNone, allowed))
	}

	var resolution entity.RoleResolution
	if subject.Bearer != nil {
		resolution = g.roles.ResolveBearer(ctx, subject.Bearer)
	} else {
		resolution = g.roles.Resolve(ctx, subject.ClientID, state.Session)
	}

	return g.record(ctx, evaluateGuard(true, state, resolution.Role, allowed))
}

// Navigate evaluates a client route.
func (g *routeGuard) Navigate(ctx context.Context, subject usecase.GuardSubject, path string) entity.GuardDecision {
	route, ok := entity.LookupClientRoute(path)
	if !ok {
		return entity.GuardDecision{Path: path, Redirect: entity.PathHome}
	}

	if !route.Protected {
		return entity.GuardDecision{Path: route.Path, Allowed: true}
	}

	decision := g.Authorize(ctx, subject, route.AllowedRoles)
	decision.Path = route.Path

	return decision
}

// observe waits for a resolving client session up to the configured timeout.
func (g *routeGuard) observe(ctx context.Context, subject usecase.GuardSubject) entity.SessionState {
	if subject.Bearer != nil {
		return entity.SessionState{Session: subject.Bearer}
	}

	if subject.ClientID == "" {
		return entity.SessionState{}
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.resolveTimeout)
	defer cancel()

	state, err := g.sessions.Await(waitCtx, subject.ClientID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Warn("Session still resolving",
			slog.String("client_id", subject.ClientID),
			slog.Any("error", err),
		)
	}

	return state
}

func (g *routeGuard) record(ctx context.Context, decision entity.GuardDecision) entity.GuardDecision {
	g.metrics.ObserveGuardDecision(string(decision.State))

	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Debug("Route guard decision",
		slog.String("state", string(decision.State)),
		slog.String("role", decision.Role.String()),
		slog.String("redirect", decision.Redirect),
	)

	return decision
}
