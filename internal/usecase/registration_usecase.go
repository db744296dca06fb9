package usecase

import (
	"context"

	"dukasync/internal/domain/entity"
)

// RegisterInput is the candidate account submitted on the sign-up form.
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	AccountType     string

	BusinessName               string
	BusinessRegistrationNumber string
	ShopName                   string
	County                     string
	Constituency               string
	AcceptTerms                bool
}

// RegisterOutput describes a completed registration.
type RegisterOutput struct {
	Session  *entity.Session
	Profile  *entity.UserProfile
	Redirect string
	Message  string
	// OnboardingIncomplete is set when the best-effort onboarding call failed.
	OnboardingIncomplete bool
}

// RegistrationUsecase provisions a new account.
type RegistrationUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}
