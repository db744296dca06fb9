package context

import (
	"dukasync/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keyClientID      = "client_id"
	keyBearerSession = "bearer_session"
	keyGuardDecision = "guard_decision"
)

// SetClientID stores the browser client id resolved from the session cookie.
func SetClientID(c echo.Context, clientID string) {
	c.Set(keyClientID, clientID)
}

// GetClientID returns the browser client id, or "" for requests without a session cookie.
func GetClientID(c echo.Context) string {
	id, _ := c.Get(keyClientID).(string)

	return id
}

// SetBearerSession stores a session verified from an Authorization header.
func SetBearerSession(c echo.Context, session *entity.Session) {
	c.Set(keyBearerSession, session)
}

// GetBearerSession returns the verified bearer session, if any.
func GetBearerSession(c echo.Context) *entity.Session {
	session, _ := c.Get(keyBearerSession).(*entity.Session)

	return session
}

// SetGuardDecision stores the decision that let the request through.
func SetGuardDecision(c echo.Context, decision entity.GuardDecision) {
	c.Set(keyGuardDecision, decision)
}

// GetGuardDecision returns the decision stored by the guard middleware.
func GetGuardDecision(c echo.Context) (entity.GuardDecision, bool) {
	decision, ok := c.Get(keyGuardDecision).(entity.GuardDecision)

	return decision, ok
}
