package firebase

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

// adminAuth is the subset of the Admin SDK auth client used by the provider.
type adminAuth interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

type identityProvider struct {
	admin    adminAuth
	password passwordAuth
	logger   *slog.Logger
}

// IdentityProviderParams holds dependencies for the identity provider, injected by Fx
type IdentityProviderParams struct {
	fx.In

	Clients *Clients
	Logger  *slog.Logger
}

// NewIdentityProvider creates the Firebase-backed identity provider.
// Without configured clients every call fails with ErrServiceNotConfigured.
func NewIdentityProvider(params IdentityProviderParams) service.IdentityProvider {
	p := &identityProvider{logger: params.Logger}
	if params.Clients.Configured() {
		p.admin = params.Clients.Auth
		p.password = newToolkitClient(params.Clients.Toolkit)
	}

	return p
}

func (p *identityProvider) configured() bool {
	return p.admin != nil && p.password != nil
}

// SignIn exchanges an email/password pair for a session
func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	if !p.configured() {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	grant, err := p.password.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, mapSignInError(err)
	}

	return p.sessionFromGrant(ctx, grant), nil
}

// SignUp creates an identity with the email/password pair
func (p *identityProvider) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	if !p.configured() {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	grant, err := p.password.SignUp(ctx, email, password)
	if err != nil {
		return nil, mapSignUpError(err)
	}

	return p.sessionFromGrant(ctx, grant), nil
}

// UpdateDisplayName sets the display name on the identity
func (p *identityProvider) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	if !p.configured() {
		return errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	if _, err := p.admin.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(displayName)); err != nil {
		return errors.Wrap(err, "update display name")
	}

	return nil
}

// SendPasswordReset dispatches the reset email. Unknown addresses are reported as success.
func (p *identityProvider) SendPasswordReset(ctx context.Context, email string) error {
	if !p.configured() {
		return errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	if err := p.password.SendPasswordResetEmail(ctx, email); err != nil {
		return mapResetError(err)
	}

	return nil
}

// VerifyIDToken validates a bearer token with the Admin SDK
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Session, error) {
	if !p.configured() {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	token, err := p.admin.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithDetails(err.Error()), "verify id token")
	}

	session := &entity.Session{
		UserID:         token.UID,
		IDToken:        idToken,
		TokenExpiresAt: time.Unix(token.Expires, 0),
	}
	if email, ok := token.Claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		session.DisplayName = name
	}

	return session, nil
}

// RefreshIDToken mints a custom token for the session's user and exchanges it for a new ID token
func (p *identityProvider) RefreshIDToken(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	if !p.configured() {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}
	if session == nil || session.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	customToken, err := p.admin.CustomToken(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithDetails(err.Error()), "mint custom token")
	}

	grant, err := p.password.ExchangeCustomToken(ctx, customToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithDetails(providerCode(err)), "exchange custom token")
	}

	refreshed := *session
	refreshed.IDToken = grant.IDToken
	refreshed.TokenExpiresAt = p.expiryOf(ctx, grant.IDToken)
	if grant.RefreshToken != "" {
		refreshed.RefreshToken = grant.RefreshToken
	}

	return &refreshed, nil
}

func (p *identityProvider) sessionFromGrant(ctx context.Context, grant *tokenGrant) *entity.Session {
	return &entity.Session{
		UserID:         grant.UID,
		Email:          grant.Email,
		DisplayName:    grant.DisplayName,
		IDToken:        grant.IDToken,
		RefreshToken:   grant.RefreshToken,
		TokenExpiresAt: p.expiryOf(ctx, grant.IDToken),
	}
}

// expiryOf returns the zero time when the token cannot be read, which forces a refresh on next use.
func (p *identityProvider) expiryOf(ctx context.Context, idToken string) time.Time {
	exp, err := tokenExpiry(idToken)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Could not read ID token expiry",
			slog.Any("error", err),
		)

		return time.Time{}
	}

	return exp
}
