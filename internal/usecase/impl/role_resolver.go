package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"
	"dukasync/internal/usecase"

	"go.uber.org/fx"
)

type cachedRole struct {
	userID     string
	resolution entity.RoleResolution
}

// roleResolver implements usecase.RoleUsecase.
type roleResolver struct {
	profiles repository.ProfileRepository
	metrics  service.MetricsRecorder
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]*cachedRole
	// generation counts evictions per client so a fetch started before an eviction is not stored after it.
	generation map[string]uint64
	// fetching counts in-flight fetches per client; generation entries live only while one is running.
	fetching map[string]int
}

// RoleResolverParams holds dependencies for RoleResolver, injected by Fx.
type RoleResolverParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Profiles repository.ProfileRepository
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewRoleResolver creates a role resolver that follows the auth-state stream.
func NewRoleResolver(params RoleResolverParams) usecase.RoleUsecase {
	r := newRoleResolver(params.Profiles, params.Metrics, params.Logger)
	params.Sessions.Subscribe(r.onAuthStateChange)

	return r
}

func newRoleResolver(profiles repository.ProfileRepository, metrics service.MetricsRecorder, logger *slog.Logger) *roleResolver {
	return &roleResolver{
		profiles:   profiles,
		metrics:    metrics,
		logger:     logger,
		cache:      make(map[string]*cachedRole),
		generation: make(map[string]uint64),
		fetching:   make(map[string]int),
	}
}

// onAuthStateChange evicts the cached role when the client's user changes or signs out.
// A token refresh keeps the same user id and keeps the cached role.
func (r *roleResolver) onAuthStateChange(change entity.AuthStateChange) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cached, ok := r.cache[change.ClientID]
	if change.Session != nil && ok && cached.userID == change.Session.UserID {
		return
	}

	delete(r.cache, change.ClientID)
	if r.fetching[change.ClientID] > 0 {
		r.generation[change.ClientID]++

		return
	}
	delete(r.generation, change.ClientID)
}

// Resolve returns the role of the client's session.
func (r *roleResolver) Resolve(ctx context.Context, clientID string, session *entity.Session) entity.RoleResolution {
	if session == nil {
		return entity.RoleResolution{Role: entity.RoleNone, Outcome: entity.RoleOutcomeNoProfile}
	}

	r.mu.Lock()
	if cached, ok := r.cache[clientID]; ok && cached.userID == session.UserID {
		r.mu.Unlock()

		return cached.resolution
	}
	generation := r.generation[clientID]
	r.fetching[clientID]++
	r.mu.Unlock()

	resolution := r.fetch(ctx, session.UserID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if resolution.Outcome != entity.RoleOutcomeFetchFailed && r.generation[clientID] == generation {
		r.cache[clientID] = &cachedRole{userID: session.UserID, resolution: resolution}
	}
	r.fetching[clientID]--
	if r.fetching[clientID] == 0 {
		delete(r.fetching, clientID)
		delete(r.generation, clientID)
	}

	return resolution
}

// ResolveBearer resolves without touching the cache.
func (r *roleResolver) ResolveBearer(ctx context.Context, session *entity.Session) entity.RoleResolution {
	if session == nil {
		return entity.RoleResolution{Role: entity.RoleNone, Outcome: entity.RoleOutcomeNoProfile}
	}

	return r.fetch(ctx, session.UserID)
}

func (r *roleResolver) fetch(ctx context.Context, uid string) entity.RoleResolution {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	profile, err := r.profiles.FindByID(ctx, uid)
	switch {
	case err == nil:
		resolution := entity.RoleResolution{
			UserID:  uid,
			Role:    profile.Role(),
			Outcome: entity.RoleOutcomeResolved,
			Profile: profile,
		}
		r.metrics.ObserveRoleResolution(string(resolution.Outcome))

		return resolution
	case errors.Is(err, repository.ErrProfileNotFound):
		logger.Info("No profile for user", slog.String("uid", uid))
		r.metrics.ObserveRoleResolution(string(entity.RoleOutcomeNoProfile))

		return entity.RoleResolution{UserID: uid, Role: entity.RoleNone, Outcome: entity.RoleOutcomeNoProfile}
	default:
		logger.Error("Failed to fetch profile",
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		r.metrics.ObserveRoleResolution(string(entity.RoleOutcomeFetchFailed))

		return entity.RoleResolution{UserID: uid, Role: entity.RoleNone, Outcome: entity.RoleOutcomeFetchFailed}
	}
}
