package entity

import "time"

// UserProfile is the application-level record describing a user's role and business linkage.
// It is keyed by the identity provider's user id.
type UserProfile struct {
	UID                        string    `json:"uid"`
	AccountType                string    `json:"accountType,omitempty"`
	LegacyRole                 string    `json:"role,omitempty"`
	Email                      string    `json:"email"`
	DisplayName                string    `json:"displayName,omitempty"`
	BusinessName               string    `json:"businessName,omitempty"`
	BusinessRegistrationNumber *string   `json:"businessRegistrationNumber,omitempty"`
	ShopName                   string    `json:"shopName,omitempty"`
	County                     string    `json:"county,omitempty"`
	Constituency               string    `json:"constituency,omitempty"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// Role derives the normalized role: accountType first, the legacy role field when accountType is absent.
func (p *UserProfile) Role() Role {
	if p == nil {
		return RoleNone
	}

	if p.AccountType != "" {
		return ParseRole(p.AccountType)
	}

	return ParseRole(p.LegacyRole)
}

// RoleOutcome tells how a role was resolved.
type RoleOutcome string

const (
	// RoleOutcomeResolved means the profile was read; the role may still be RoleNone.
	RoleOutcomeResolved RoleOutcome = "resolved"
	// RoleOutcomeNoProfile means no profile document exists for the user.
	RoleOutcomeNoProfile RoleOutcome = "no_profile"
	// RoleOutcomeFetchFailed means the profile could not be read.
	RoleOutcomeFetchFailed RoleOutcome = "fetch_failed"
)

// RoleResolution is the result of resolving a session's role. It is never an error.
type RoleResolution struct {
	UserID  string       `json:"uid"`
	Role    Role         `json:"role"`
	Outcome RoleOutcome  `json:"outcome"`
	Profile *UserProfile `json:"profile,omitempty"`
}
