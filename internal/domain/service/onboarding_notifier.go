package service

import "context"

// OnboardingPayload is the body posted to the onboarding endpoint after registration.
type OnboardingPayload struct {
	UID                        string  `json:"uid"`
	Role                       string  `json:"role"`
	Email                      string  `json:"email"`
	Name                       string  `json:"name"`
	BusinessName               *string `json:"businessName,omitempty"`
	BusinessRegistrationNumber *string `json:"businessRegistrationNumber"`
	ShopName                   *string `json:"shopName,omitempty"`
	County                     *string `json:"county,omitempty"`
	Constituency               *string `json:"constituency,omitempty"`
}

// OnboardingNotifier posts the onboarding payload with the new identity's bearer token.
type OnboardingNotifier interface {
	// Enabled reports whether an onboarding endpoint is configured.
	Enabled() bool

	// Notify posts the payload. Any non-2xx answer is an error.
	Notify(ctx context.Context, idToken string, payload *OnboardingPayload) error
}
