package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"dukasync/internal/delivery/api/response"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type signInEnvelope struct {
	Data SignInResponse `json:"data"`
}

type errorEnvelope struct {
	Error response.ErrorInfo `json:"error"`
}

func TestAuthHandler_Login(t *testing.T) {
	h, sessions, roles, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"jane@example.com","password":"secret1"}`)
	session := &entity.Session{UserID: "uid-1", Email: "jane@example.com"}

	var clientID string
	sessions.EXPECT().Login(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool {
		clientID = in.ClientID

		return in.Email == "jane@example.com" && in.Password == "secret1" && in.ClientID != ""
	})).Return(session, nil)
	sessions.EXPECT().Await(mock.Anything, mock.Anything).Return(entity.SessionState{Session: session}, nil)
	roles.EXPECT().Resolve(mock.Anything, mock.Anything, session).
		Return(entity.RoleResolution{UserID: "uid-1", Role: entity.RoleWholesaler, Outcome: entity.RoleOutcomeResolved})

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body signInEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.DashboardPathWholesaler, body.Data.Redirect)
	assert.Equal(t, loginSuccessMessage, body.Data.Message)

	cookie := cookieNamed(rec, "dukasync_sid")
	require.NotNil(t, cookie)
	assert.Equal(t, clientID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.NotContains(t, rec.Body.String(), "idToken")
}

func TestAuthHandler_Login_NoProfileFallsBack(t *testing.T) {
	h, sessions, roles, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"jane@example.com","password":"secret1"}`)
	session := &entity.Session{UserID: "uid-1"}

	sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(session, nil)
	sessions.EXPECT().Await(mock.Anything, mock.Anything).Return(entity.SessionState{Session: session}, nil)
	roles.EXPECT().Resolve(mock.Anything, mock.Anything, session).
		Return(entity.RoleResolution{UserID: "uid-1", Outcome: entity.RoleOutcomeNoProfile})

	require.NoError(t, h.Login(c))

	var body signInEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.DashboardPathFallback, body.Data.Redirect)
	assert.Equal(t, loginNoProfileMessage, body.Data.Message)
}

func TestAuthHandler_Login_IssuesNewClientID(t *testing.T) {
	h, sessions, roles, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"jane@example.com","password":"secret1"}`)
	c = withClient(c)
	session := &entity.Session{UserID: "uid-1"}

	var clientID string
	sessions.EXPECT().Login(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool {
		clientID = in.ClientID

		return in.ClientID != "" && in.ClientID != testClientID
	})).Return(session, nil)
	sessions.EXPECT().Await(mock.Anything, mock.Anything).Return(entity.SessionState{Session: session}, nil)
	sessions.EXPECT().Logout(mock.Anything, testClientID).Return(nil).Once()
	roles.EXPECT().Resolve(mock.Anything, mock.Anything, session).
		Return(entity.RoleResolution{UserID: "uid-1", Role: entity.RoleCustomer, Outcome: entity.RoleOutcomeResolved})

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := cookieNamed(rec, "dukasync_sid")
	require.NotNil(t, cookie)
	assert.Equal(t, clientID, cookie.Value)
	assert.NotEqual(t, testClientID, cookie.Value)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, sessions, _, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"jane@example.com","password":"wrong"}`)

	sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), body.Error.Message)
	assert.Nil(t, cookieNamed(rec, "dukasync_sid"))
}

func TestAuthHandler_Login_ValidationFailed(t *testing.T) {
	h, _, _, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"email"`)
	assert.Contains(t, rec.Body.String(), `"password":"required"`)
}

func TestAuthHandler_Register(t *testing.T) {
	h, sessions, _, registration := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/register", `{
		"fullName":"Jane Doe","email":"jane@example.com","password":"secret1","confirmPassword":"secret1",
		"accountType":"customer"
	}`)
	session := &entity.Session{UserID: "uid-1"}

	registration.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
		return in.AccountType == "customer" && in.FullName == "Jane Doe" && in.ConfirmPassword == "secret1"
	})).Return(&usecase.RegisterOutput{
		Session:  session,
		Profile:  &entity.UserProfile{UID: "uid-1", AccountType: "customer"},
		Redirect: entity.DashboardPathCustomer,
		Message:  "Account created! Redirecting to your dashboard…",
	}, nil)
	sessions.EXPECT().Adopt(mock.Anything, mock.Anything, session).Return(nil)
	sessions.EXPECT().Await(mock.Anything, mock.Anything).Return(entity.SessionState{Session: session}, nil)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body signInEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.DashboardPathCustomer, body.Data.Redirect)
	assert.Equal(t, entity.RoleCustomer, body.Data.Role)
	assert.NotNil(t, cookieNamed(rec, "dukasync_sid"))
}

func TestAuthHandler_Register_IssuesNewClientID(t *testing.T) {
	h, sessions, _, registration := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/register", `{
		"fullName":"Jane Doe","email":"jane@example.com","password":"secret1","confirmPassword":"secret1",
		"accountType":"customer"
	}`)
	c = withClient(c)
	session := &entity.Session{UserID: "uid-1"}

	registration.EXPECT().Register(mock.Anything, mock.Anything).Return(&usecase.RegisterOutput{
		Session:  session,
		Profile:  &entity.UserProfile{UID: "uid-1", AccountType: "customer"},
		Redirect: entity.DashboardPathCustomer,
	}, nil)

	var adopted string
	sessions.EXPECT().Adopt(mock.Anything, mock.MatchedBy(func(clientID string) bool {
		adopted = clientID

		return clientID != testClientID
	}), session).Return(nil)
	sessions.EXPECT().Await(mock.Anything, mock.Anything).Return(entity.SessionState{Session: session}, nil)
	sessions.EXPECT().Logout(mock.Anything, testClientID).Return(nil).Once()

	require.NoError(t, h.Register(c))

	cookie := cookieNamed(rec, "dukasync_sid")
	require.NotNil(t, cookie)
	assert.Equal(t, adopted, cookie.Value)
}

func TestAuthHandler_Register_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "duplicate business name",
			err:      errors.WithStack(domainerrors.ErrDuplicateBusinessName.WithDetails("acme-traders")),
			wantCode: http.StatusConflict,
			wantErr:  "DUPLICATE_BUSINESS_NAME",
		},
		{
			name:     "ledger not seeded",
			err:      domainerrors.NewPartialProvisioningError("seed-ledger", []string{"create-identity", "write-profile"}, errors.New("rtdb down")),
			wantCode: http.StatusBadGateway,
			wantErr:  "LEDGER_NOT_SEEDED",
		},
		{
			name:     "password mismatch",
			err:      errors.WithStack(domainerrors.ErrPasswordMismatch),
			wantCode: http.StatusBadRequest,
			wantErr:  "PASSWORD_MISMATCH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, registration := newTestAuthHandler(t)
			c, rec := newContext(http.MethodPost, "/api/auth/register", `{
				"email":"jane@example.com","password":"secret1","confirmPassword":"secret2","accountType":"wholesaler"
			}`)

			registration.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			require.NoError(t, h.Register(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			var body errorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("signed out client", func(t *testing.T) {
		h, _, _, _ := newTestAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/api/auth/logout", "")

		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("known client", func(t *testing.T) {
		h, sessions, _, _ := newTestAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/api/auth/logout", "")
		c = withClient(c)

		sessions.EXPECT().Logout(mock.Anything, testClientID).Return(nil)
		sessions.EXPECT().Await(mock.Anything, testClientID).Return(entity.SessionState{}, nil)

		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	h, sessions, _, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodGet, "/api/auth/session", "")
	c = withClient(c)

	sessions.EXPECT().Configured().Return(true)
	sessions.EXPECT().Current(testClientID).Return(entity.SessionState{Resolving: true})

	require.NoError(t, h.Session(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session":null,"resolving":true,"configured":true}`, dataOf(t, rec.Body.Bytes()))
}

func TestAuthHandler_Token(t *testing.T) {
	t.Run("no client", func(t *testing.T) {
		h, _, _, _ := newTestAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/api/auth/token", "")

		require.NoError(t, h.Token(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("fresh token", func(t *testing.T) {
		h, sessions, _, _ := newTestAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/api/auth/token", "")
		c = withClient(c)

		sessions.EXPECT().FreshToken(mock.Anything, testClientID).Return("id-token", nil)

		require.NoError(t, h.Token(c))

		assert.JSONEq(t, `{"idToken":"id-token"}`, dataOf(t, rec.Body.Bytes()))
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	h, sessions, _, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/password-reset", `{"email":"jane@example.com"}`)

	sessions.EXPECT().SendPasswordReset(mock.Anything, "jane@example.com").Return(nil)

	require.NoError(t, h.PasswordReset(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "reset link is on its way")
}

func TestAuthHandler_PasswordReset_NotConfigured(t *testing.T) {
	h, sessions, _, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/password-reset", `{"email":"jane@example.com"}`)

	sessions.EXPECT().SendPasswordReset(mock.Anything, "jane@example.com").
		Return(errors.WithStack(domainerrors.ErrServiceNotConfigured))

	require.NoError(t, h.PasswordReset(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// dataOf extracts the raw data member of a success envelope.
func dataOf(t *testing.T, body []byte) string {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return string(envelope.Data)
}
