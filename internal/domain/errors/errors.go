package errors

import (
	"net/http"
	"strings"

	"dukasync/internal/domain/constants"
	"dukasync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so variants built with
// WithDetails or WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message and keeps the code
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Configuration errors
	ErrServiceNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_NOT_CONFIGURED",
		"The service is not fully configured. Please try again later or contact support.",
		"",
	)

	// Registration validation errors, reported before any write
	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match.",
		"",
	)

	ErrMissingBusinessName = NewBaseError(
		http.StatusBadRequest,
		"MISSING_BUSINESS_NAME",
		"Please enter a business name for your wholesaler account.",
		"",
	)

	ErrMissingShopName = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SHOP_NAME",
		"A shop name is required for shopkeeper accounts.",
		"",
	)

	ErrMissingLocation = NewBaseError(
		http.StatusBadRequest,
		"MISSING_LOCATION",
		"Please select your county and constituency.",
		"",
	)

	ErrTermsNotAccepted = NewBaseError(
		http.StatusBadRequest,
		"TERMS_NOT_ACCEPTED",
		"You must accept the Terms and Conditions to create this type of account.",
		"",
	)

	ErrInvalidAccountType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCOUNT_TYPE",
		"Please choose a wholesaler, shopkeeper or customer account.",
		"",
	)

	ErrInvalidBusinessName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BUSINESS_NAME",
		"Please enter a valid business name.",
		"",
	)

	ErrDuplicateBusinessName = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_BUSINESS_NAME",
		"A wholesaler with this business name is already registered. Please use a different name or contact support if you believe this is a mistake.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some of the details you entered are invalid.",
		"",
	)

	// Identity provider errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"The email or password you entered is incorrect. Please check your details and try again.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"We couldn’t find an account with that email. You can sign up or try a different email.",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"We couldn’t reach the server. Check your internet connection and try again.",
		"",
	)

	ErrSignInFailed = NewBaseError(
		http.StatusBadGateway,
		"SIGN_IN_FAILED",
		"We couldn’t sign you in right now. Please try again or contact support if the problem continues.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"An account with this email already exists. Try signing in instead.",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password should be at least 6 characters.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address.",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadGateway,
		"REGISTRATION_FAILED",
		"Unable to create your account right now. Please try again.",
		"",
	)

	ErrPasswordResetFailed = NewBaseError(
		http.StatusBadGateway,
		"PASSWORD_RESET_FAILED",
		"We couldn’t send a reset link right now. Please try again.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Your session is invalid or has expired. Please sign in again.",
		"",
	)

	// Session and access errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue.",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"You do not have access to this workspace.",
		"",
	)

	ErrSessionResolving = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_RESOLVING",
		"Checking authentication… Please retry in a moment.",
		"",
	)

	// Download errors
	ErrStorageBucketInvalid = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_BUCKET_INVALID",
		"Storage bucket is not configured correctly.",
		"",
	)

	ErrApkPathMissing = NewBaseError(
		http.StatusServiceUnavailable,
		"APK_PATH_MISSING",
		"APK path is missing.",
		"",
	)

	ErrApkUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"APK_UNAVAILABLE",
		"APK download is currently unavailable.",
		"",
	)

	ErrDownloadURLInvalid = NewBaseError(
		http.StatusServiceUnavailable,
		"DOWNLOAD_URL_INVALID",
		"Download URL is invalid.",
		"",
	)

	// Contact form errors
	ErrContactFailed = NewBaseError(
		http.StatusBadGateway,
		"CONTACT_FAILED",
		"We couldn’t send your message right now. Please try again.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found.",
		"",
	)
)

// StoreError represents a failed operation against the hosted stores, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "store operation failed").Error()
}

// Unwrap exposes the store client's error
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_OPERATION_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "We couldn’t save your details right now. Please try again."
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}

// PartialProvisioningError reports a registration that failed after the identity was created.
// Nothing is rolled back: the completed steps stay in place and are listed for support.
type PartialProvisioningError struct {
	failedStep string
	completed  []string
	err        error
}

// NewPartialProvisioningError creates the error for a step that failed after identity creation
func NewPartialProvisioningError(failedStep string, completed []string, err error) *PartialProvisioningError {
	return &PartialProvisioningError{
		failedStep: failedStep,
		completed:  append([]string(nil), completed...),
		err:        err,
	}
}

// Error implements the error interface
func (e *PartialProvisioningError) Error() string {
	return errors.Wrapf(e.err, "registration incomplete at step %s (completed: %s)",
		e.failedStep, strings.Join(e.completed, ",")).Error()
}

// Unwrap exposes the step's error
func (e *PartialProvisioningError) Unwrap() error {
	return e.err
}

// FailedStep returns the name of the step that failed
func (e *PartialProvisioningError) FailedStep() string {
	return e.failedStep
}

// Completed returns the steps that finished before the failure
func (e *PartialProvisioningError) Completed() []string {
	return append([]string(nil), e.completed...)
}

// LedgerNotSeeded reports whether the financial ledger seed was the failing step
func (e *PartialProvisioningError) LedgerNotSeeded() bool {
	return e.failedStep == constants.StepSeedLedger
}

// HTTPCode returns the HTTP status code
func (e *PartialProvisioningError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *PartialProvisioningError) ErrorCode() string {
	if e.LedgerNotSeeded() {
		return "LEDGER_NOT_SEEDED"
	}

	return "PARTIAL_PROVISIONING"
}

// Message returns the user-friendly error message
func (e *PartialProvisioningError) Message() string {
	if e.LedgerNotSeeded() {
		return "We created your wholesaler profile, but financial accounts were not set up. Please retry from settings or contact support."
	}

	if errors.Is(e.err, ErrDuplicateBusinessName) {
		return "Your account was created, but this business name was claimed by another wholesaler at the same moment. Please contact support to choose a different name."
	}

	return "Your account was created, but some setup did not complete. Please retry from settings or contact support."
}

// Details returns detailed error information
func (e *PartialProvisioningError) Details() string {
	return "failed step: " + e.failedStep
}
