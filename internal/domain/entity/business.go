package entity

import (
	"strings"
	"time"
)

// BusinessEntity is a wholesaler or shop record, keyed by the owning user id.
type BusinessEntity struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty"`
	OwnerUserID        string    `json:"ownerUserId"`
	County             string    `json:"county"`
	Constituency       string    `json:"constituency"`
	Type               Role      `json:"type"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// BusinessNameIndex reserves a wholesaler business name. At most one record exists per slug.
type BusinessNameIndex struct {
	BusinessKey string    `json:"businessKey"`
	DisplayName string    `json:"displayName"`
	OwnerUserID string    `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BusinessNameSlug lowercases and trims the name, collapses every run of characters
// outside [a-z0-9] into a single "-" and strips leading and trailing separators.
// An empty result means the name cannot be indexed.
func BusinessNameSlug(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lowered))

	pendingSeparator := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSeparator = false
			b.WriteRune(r)

			continue
		}
		pendingSeparator = true
	}

	return b.String()
}
