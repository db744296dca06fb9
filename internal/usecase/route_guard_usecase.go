package usecase

import (
	"context"

	"dukasync/internal/domain/entity"
)

// GuardSubject identifies who is asking: a browser client or a bearer session.
type GuardSubject struct {
	ClientID string
	Bearer   *entity.Session
}

// RouteGuardUsecase decides whether a session may reach a target.
type RouteGuardUsecase interface {
	// Authorize evaluates the subject against an optional role restriction.
	Authorize(ctx context.Context, subject GuardSubject, allowed entity.Roles) entity.GuardDecision
	// Navigate evaluates a client route. Unknown paths redirect home.
	Navigate(ctx context.Context, subject GuardSubject, path string) entity.GuardDecision
}
