// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dukasync/internal/domain/entity"
)

// LoginInput defines the data required for a client to sign in.
type LoginInput struct {
	ClientID string
	Email    string
	Password string
}

// SessionListener is notified from the auth-state stream consumer after each change is applied.
type SessionListener func(change entity.AuthStateChange)

// SessionUsecase tracks the session of every browser client through one process-wide
// auth-state stream.
type SessionUsecase interface {
	// Start launches the stream consumer. Calling it again is a no-op.
	Start(ctx context.Context) error
	// Stop tears the stream down and waits for the consumer to exit.
	Stop(ctx context.Context) error

	// Configured reports whether the identity provider credentials are present.
	Configured() bool
	// Current returns the client's session and whether it is still resolving.
	Current(clientID string) entity.SessionState
	// Await blocks until the client's state stops resolving or ctx is done.
	Await(ctx context.Context, clientID string) (entity.SessionState, error)
	// Subscribe registers a listener for applied auth-state changes.
	Subscribe(listener SessionListener)

	// Login signs in with email and password. The client's session is populated when the
	// stream delivers the resulting change, after Login returns.
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)
	// Logout clears the client's session. It never fails for a signed-out client.
	Logout(ctx context.Context, clientID string) error
	// Adopt publishes an externally created session, such as a fresh registration, for the client.
	Adopt(ctx context.Context, clientID string, session *entity.Session) error

	// VerifyToken resolves a stateless bearer session.
	VerifyToken(ctx context.Context, idToken string) (*entity.Session, error)
	// FreshToken returns an unexpired ID token for the client's session.
	FreshToken(ctx context.Context, clientID string) (string, error)
	// SendPasswordReset dispatches a reset email without revealing whether the address is registered.
	SendPasswordReset(ctx context.Context, email string) error
}
