package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// SessionMiddleware identifies the caller: a browser client by its cookie, or a bearer ID token.
type SessionMiddleware struct {
	sessions     usecase.SessionUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:     params.Sessions,
		cookieName:   params.Config.Session.CookieName,
		cookieSecure: params.Config.Session.CookieSecure,
		logger:       params.Logger,
	}
}

// Identify stores the client id of a well-formed cookie and verifies any bearer token.
// A present but invalid bearer token is rejected rather than ignored.
func (m *SessionMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				deliverycontext.SetClientID(c, id.String())
			}
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrTokenInvalid
		}

		session, err := m.sessions.VerifyToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}
		deliverycontext.SetBearerSession(c, session)

		return next(c)
	}
}

// NewClientID mints a client id. It is not bound to the caller until IssueClientID.
func (m *SessionMiddleware) NewClientID() string {
	return uuid.NewString()
}

// IssueClientID binds id to the caller through the session cookie and returns the id it replaces, or "".
// Sign-in always issues a new id, so an id planted in the browser beforehand never carries the session.
func (m *SessionMiddleware) IssueClientID(c echo.Context, id string) string {
	previous := deliverycontext.GetClientID(c)

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	deliverycontext.SetClientID(c, id)

	return previous
}

// Subject builds the guard subject of the request.
func Subject(c echo.Context) usecase.GuardSubject {
	return usecase.GuardSubject{
		ClientID: deliverycontext.GetClientID(c),
		Bearer:   deliverycontext.GetBearerSession(c),
	}
}
