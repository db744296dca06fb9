package service

import "time"

// MetricsRecorder records business outcomes.
type MetricsRecorder interface {
	ObserveLogin(outcome string)
	ObserveRegistration(role, outcome string)
	ObserveRegistrationStep(step, outcome string)
	ObserveRoleResolution(outcome string)
	ObserveGuardDecision(state string)
	ObserveOnboarding(outcome string)
}

// RequestObserver records served HTTP requests by route pattern.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}
