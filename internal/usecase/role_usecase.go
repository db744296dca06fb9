package usecase

import (
	"context"

	"dukasync/internal/domain/entity"
)

// RoleUsecase derives the normalized role of a session from its profile.
// It never returns an error: failures resolve to RoleNone with an explicit outcome.
type RoleUsecase interface {
	// Resolve returns the client's role, cached until the client's user id changes.
	Resolve(ctx context.Context, clientID string, session *entity.Session) entity.RoleResolution
	// ResolveBearer resolves a stateless bearer session without caching.
	ResolveBearer(ctx context.Context, session *entity.Session) entity.RoleResolution
}
