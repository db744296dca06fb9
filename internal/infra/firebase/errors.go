package firebase

import (
	"context"
	"net"
	"net/url"
	"strings"

	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/errors"

	"google.golang.org/api/googleapi"
)

// Identity Toolkit reason codes.
const (
	codeEmailNotFound           = "EMAIL_NOT_FOUND"
	codeInvalidPassword         = "INVALID_PASSWORD"
	codeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	codeInvalidEmail            = "INVALID_EMAIL"
	codeMissingPassword         = "MISSING_PASSWORD"
	codeEmailExists             = "EMAIL_EXISTS"
	codeWeakPassword            = "WEAK_PASSWORD"
)

// providerCode extracts the reason code from an Identity Toolkit error.
// Messages look like "WEAK_PASSWORD : Password should be at least 6 characters".
func providerCode(err error) string {
	apiErr, ok := errors.AsType[*googleapi.Error](err)
	if !ok {
		return ""
	}

	message := apiErr.Message
	if message == "" && len(apiErr.Errors) > 0 {
		message = apiErr.Errors[0].Message
	}

	code, _, _ := strings.Cut(message, ":")

	return strings.TrimSpace(code)
}

// isNetworkError reports failures to reach the provider at all.
func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if _, ok := errors.AsType[net.Error](err); ok {
		return true
	}

	_, ok := errors.AsType[*url.Error](err)

	return ok
}

func mapSignInError(err error) error {
	code := providerCode(err)
	switch code {
	case codeEmailNotFound:
		return errors.Wrap(domainerrors.ErrUserNotFound.WithDetails(code), "sign in")
	case codeInvalidPassword, codeInvalidLoginCredentials, codeInvalidEmail, codeMissingPassword:
		return errors.Wrap(domainerrors.ErrInvalidCredentials.WithDetails(code), "sign in")
	}

	if code == "" && isNetworkError(err) {
		return errors.Wrap(domainerrors.ErrProviderUnavailable.WithDetails(err.Error()), "sign in")
	}

	return errors.Wrap(domainerrors.ErrSignInFailed.WithDetails(code), "sign in")
}

func mapSignUpError(err error) error {
	code := providerCode(err)
	switch code {
	case codeEmailExists:
		return errors.Wrap(domainerrors.ErrEmailAlreadyInUse.WithDetails(code), "sign up")
	case codeWeakPassword:
		return errors.Wrap(domainerrors.ErrWeakPassword.WithDetails(code), "sign up")
	case codeInvalidEmail:
		return errors.Wrap(domainerrors.ErrInvalidEmail.WithDetails(code), "sign up")
	}

	if code == "" && isNetworkError(err) {
		return errors.Wrap(domainerrors.ErrProviderUnavailable.WithDetails(err.Error()), "sign up")
	}

	return errors.Wrap(domainerrors.ErrRegistrationFailed.WithDetails(code), "sign up")
}

// mapResetError hides whether the address is registered.
func mapResetError(err error) error {
	code := providerCode(err)
	if code == codeEmailNotFound {
		return nil
	}

	return errors.Wrap(domainerrors.ErrPasswordResetFailed.WithDetails(code), "send password reset")
}
