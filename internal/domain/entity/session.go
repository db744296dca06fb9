package entity

import "time"

// Session is the authenticated identity handle issued by the identity provider.
type Session struct {
	UserID      string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	// Provider tokens never leave the service in session payloads.
	IDToken        string    `json:"-"`
	RefreshToken   string    `json:"-"`
	TokenExpiresAt time.Time `json:"-"`
}

// TokenExpiresWithin reports whether the cached ID token is missing or expires inside the window.
func (s *Session) TokenExpiresWithin(now time.Time, window time.Duration) bool {
	if s.IDToken == "" || s.TokenExpiresAt.IsZero() {
		return true
	}

	return !now.Add(window).Before(s.TokenExpiresAt)
}

// SessionState is what a client observes: the current session and whether it is still being resolved.
type SessionState struct {
	Session   *Session `json:"session"`
	Resolving bool     `json:"resolving"`
}

// SignedIn reports whether the state carries a session.
func (s SessionState) SignedIn() bool {
	return s.Session != nil
}

// AuthStateChange is one event on the process-wide auth-state stream.
// A nil Session means the client signed out.
type AuthStateChange struct {
	ClientID string
	Session  *Session
}
