package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	token       *auth.Token
	verifyErr   error
	updatedUID  string
	customToken string
}

func (f *fakeAdmin) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAdmin) UpdateUser(_ context.Context, uid string, _ *auth.UserToUpdate) (*auth.UserRecord, error) {
	f.updatedUID = uid

	return &auth.UserRecord{}, nil
}

func (f *fakeAdmin) CustomToken(_ context.Context, uid string) (string, error) {
	return f.customToken + ":" + uid, nil
}

type fakePassword struct {
	grant         *tokenGrant
	err           error
	exchangedWith string
}

func (f *fakePassword) VerifyPassword(_ context.Context, _, _ string) (*tokenGrant, error) {
	return f.grant, f.err
}

func (f *fakePassword) SignUp(_ context.Context, _, _ string) (*tokenGrant, error) {
	return f.grant, f.err
}

func (f *fakePassword) SendPasswordResetEmail(_ context.Context, _ string) error {
	return f.err
}

func (f *fakePassword) ExchangeCustomToken(_ context.Context, customToken string) (*tokenGrant, error) {
	f.exchangedWith = customToken

	return f.grant, f.err
}

func newTestProvider(admin adminAuth, password passwordAuth) *identityProvider {
	return &identityProvider{
		admin:    admin,
		password: password,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestIdentityProvider_NotConfigured(t *testing.T) {
	provider := NewIdentityProvider(IdentityProviderParams{
		Clients: &Clients{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := provider.SignIn(context.Background(), "a@b.co", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotConfigured)

	err = provider.SendPasswordReset(context.Background(), "a@b.co")
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotConfigured)
}

func TestIdentityProvider_SignIn(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := signedToken(t, jwt.MapClaims{"sub": "uid-1", "exp": exp.Unix()})
	password := &fakePassword{grant: &tokenGrant{
		UID:          "uid-1",
		Email:        "jane@duka.co.ke",
		IDToken:      idToken,
		RefreshToken: "refresh-1",
	}}
	provider := newTestProvider(&fakeAdmin{}, password)

	session, err := provider.SignIn(context.Background(), "jane@duka.co.ke", "secret")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, "jane@duka.co.ke", session.Email)
	assert.True(t, exp.Equal(session.TokenExpiresAt))
	assert.Equal(t, "refresh-1", session.RefreshToken)
}

func TestIdentityProvider_SignIn_WrongPassword(t *testing.T) {
	provider := newTestProvider(&fakeAdmin{}, &fakePassword{err: apiError("INVALID_PASSWORD")})

	session, err := provider.SignIn(context.Background(), "jane@duka.co.ke", "wrong")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityProvider_VerifyIDToken(t *testing.T) {
	admin := &fakeAdmin{token: &auth.Token{
		UID:     "uid-9",
		Expires: 1_900_000_000,
		Claims:  map[string]any{"email": "admin@duka.co.ke", "name": "Admin"},
	}}
	provider := newTestProvider(admin, &fakePassword{})

	session, err := provider.VerifyIDToken(context.Background(), "bearer")

	require.NoError(t, err)
	assert.Equal(t, "uid-9", session.UserID)
	assert.Equal(t, "admin@duka.co.ke", session.Email)
	assert.Equal(t, "Admin", session.DisplayName)
	assert.Equal(t, int64(1_900_000_000), session.TokenExpiresAt.Unix())
}

func TestIdentityProvider_VerifyIDToken_Invalid(t *testing.T) {
	provider := newTestProvider(&fakeAdmin{verifyErr: assert.AnError}, &fakePassword{})

	_, err := provider.VerifyIDToken(context.Background(), "bearer")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityProvider_RefreshIDToken_KeepsIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	admin := &fakeAdmin{customToken: "custom"}
	password := &fakePassword{grant: &tokenGrant{IDToken: signedToken(t, jwt.MapClaims{"exp": exp.Unix()})}}
	provider := newTestProvider(admin, password)
	current := &entity.Session{UserID: "uid-1", Email: "jane@duka.co.ke", RefreshToken: "old-refresh"}

	refreshed, err := provider.RefreshIDToken(context.Background(), current)

	require.NoError(t, err)
	assert.Equal(t, "custom:uid-1", password.exchangedWith)
	assert.Equal(t, "uid-1", refreshed.UserID)
	assert.Equal(t, "jane@duka.co.ke", refreshed.Email)
	assert.Equal(t, "old-refresh", refreshed.RefreshToken)
	assert.True(t, exp.Equal(refreshed.TokenExpiresAt))
	assert.Empty(t, current.IDToken)
}

func TestIdentityProvider_UpdateDisplayName(t *testing.T) {
	admin := &fakeAdmin{}
	provider := newTestProvider(admin, &fakePassword{})

	require.NoError(t, provider.UpdateDisplayName(context.Background(), "uid-3", "Jane"))
	assert.Equal(t, "uid-3", admin.updatedUID)
}
