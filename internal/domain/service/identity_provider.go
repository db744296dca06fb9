// Package service defines the interfaces of the external collaborators the use cases depend on.
package service

import (
	"context"

	"dukasync/internal/domain/entity"
)

// IdentityProvider is the hosted authentication service.
// Implementations translate provider failures into domain errors.
type IdentityProvider interface {
	// SignIn exchanges an email/password pair for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp creates a new identity and returns its session.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// UpdateDisplayName sets the display name of an identity.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error

	// SendPasswordReset dispatches the reset email.
	SendPasswordReset(ctx context.Context, email string) error

	// VerifyIDToken validates a bearer ID token and returns the session it carries.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Session, error)

	// RefreshIDToken mints a fresh ID token for the session's identity.
	RefreshIDToken(ctx context.Context, session *entity.Session) (*entity.Session, error)
}
