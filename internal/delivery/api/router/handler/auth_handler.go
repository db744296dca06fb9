// Package handler contains the echo handlers of the API.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dukasync/config"
	"dukasync/internal/delivery/api/middleware"
	"dukasync/internal/delivery/api/response"
	"dukasync/internal/delivery/api/validator"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	loginSuccessMessage   = "Success! Redirecting to your dashboard…"
	loginNoProfileMessage = "Profile not found. Redirecting to a safe dashboard view…"
	passwordResetMessage  = "If that email is registered, a reset link is on its way. Check your inbox and spam folder."
	signedOutMessage      = "Signed out."
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Sessions     usecase.SessionUsecase
	Roles        usecase.RoleUsecase
	Registration usecase.RegistrationUsecase
	SessionMW    *middleware.SessionMiddleware
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves sign-in, sign-up and session endpoints
type AuthHandler struct {
	sessions       usecase.SessionUsecase
	roles          usecase.RoleUsecase
	registration   usecase.RegistrationUsecase
	sessionMW      *middleware.SessionMiddleware
	resolveTimeout time.Duration
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessions:       params.Sessions,
		roles:          params.Roles,
		registration:   params.Registration,
		sessionMW:      params.SessionMW,
		resolveTimeout: params.Config.Session.ResolveTimeout,
		logger:         params.Logger,
	}
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	FullName                   string `json:"fullName" validate:"max=200"`
	Email                      string `json:"email" validate:"required,email"`
	Password                   string `json:"password" validate:"required"`
	ConfirmPassword            string `json:"confirmPassword" validate:"required"`
	AccountType                string `json:"accountType" validate:"required"`
	BusinessName               string `json:"businessName" validate:"max=200"`
	BusinessRegistrationNumber string `json:"businessRegistrationNumber" validate:"max=100"`
	ShopName                   string `json:"shopName" validate:"max=200"`
	County                     string `json:"county" validate:"max=100"`
	Constituency               string `json:"constituency" validate:"max=100"`
	AcceptTerms                bool   `json:"acceptTerms"`
}

// PasswordResetRequest represents the forgot-password form
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SignInResponse is returned by login and registration
type SignInResponse struct {
	Session  *entity.Session `json:"session"`
	Role     entity.Role     `json:"role,omitempty"`
	Redirect string          `json:"redirect"`
	Message  string          `json:"message"`
	// OnboardingIncomplete is only set by registration
	OnboardingIncomplete bool `json:"onboardingIncomplete,omitempty"`
}

// SessionResponse describes the caller's session
type SessionResponse struct {
	Session    *entity.Session `json:"session"`
	Resolving  bool            `json:"resolving"`
	Configured bool            `json:"configured"`
}

// TokenResponse carries a fresh ID token
type TokenResponse struct {
	IDToken string `json:"idToken"`
}

// Login signs the client in and redirects to its role's dashboard
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	ctx := c.Request().Context()
	clientID := h.sessionMW.NewClientID()

	session, err := h.sessions.Login(ctx, usecase.LoginInput{
		ClientID: clientID,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The client's session is populated by the stream; wait for it so the next request sees it.
	h.awaitSettled(ctx, clientID)
	h.switchClient(c, clientID)

	resolution := h.roles.Resolve(ctx, clientID, session)

	message := loginSuccessMessage
	if resolution.Outcome == entity.RoleOutcomeNoProfile {
		message = loginNoProfileMessage
	}

	return response.Success(c, http.StatusOK, SignInResponse{
		Session:  session,
		Role:     resolution.Role,
		Redirect: resolution.Role.DashboardPath(),
		Message:  message,
	})
}

// Logout clears the client's session. It succeeds for signed-out clients too.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if clientID := deliverycontext.GetClientID(c); clientID != "" {
		if err := h.sessions.Logout(ctx, clientID); err != nil {
			return response.HandleAppError(c, err)
		}
		h.awaitSettled(ctx, clientID)
	}

	return response.Message(c, http.StatusOK, signedOutMessage)
}

// Session reports the caller's session and whether it is still resolving
func (h *AuthHandler) Session(c echo.Context) error {
	resp := SessionResponse{Configured: h.sessions.Configured()}

	if bearer := deliverycontext.GetBearerSession(c); bearer != nil {
		resp.Session = bearer
	} else if clientID := deliverycontext.GetClientID(c); clientID != "" {
		state := h.sessions.Current(clientID)
		resp.Session = state.Session
		resp.Resolving = state.Resolving
	}

	return response.Success(c, http.StatusOK, resp)
}

// Token returns an unexpired ID token for the client's session
func (h *AuthHandler) Token(c echo.Context) error {
	clientID := deliverycontext.GetClientID(c)
	if clientID == "" {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	token, err := h.sessions.FreshToken(c.Request().Context(), clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{IDToken: token})
}

// Register runs the registration workflow and signs the new account in on this client
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	ctx := c.Request().Context()
	clientID := h.sessionMW.NewClientID()

	out, err := h.registration.Register(ctx, usecase.RegisterInput{
		FullName:                   req.FullName,
		Email:                      req.Email,
		Password:                   req.Password,
		ConfirmPassword:            req.ConfirmPassword,
		AccountType:                req.AccountType,
		BusinessName:               req.BusinessName,
		BusinessRegistrationNumber: req.BusinessRegistrationNumber,
		ShopName:                   req.ShopName,
		County:                     req.County,
		Constituency:               req.Constituency,
		AcceptTerms:                req.AcceptTerms,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessions.Adopt(ctx, clientID, out.Session); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("New account not signed in on this client",
			slog.Any("error", err),
		)
	} else {
		h.awaitSettled(ctx, clientID)
		h.switchClient(c, clientID)
	}

	var role entity.Role
	if out.Profile != nil {
		role = out.Profile.Role()
	}

	return response.Success(c, http.StatusCreated, SignInResponse{
		Session:              out.Session,
		Role:                 role,
		Redirect:             out.Redirect,
		Message:              out.Message,
		OnboardingIncomplete: out.OnboardingIncomplete,
	})
}

// PasswordReset sends a reset link without revealing whether the email is registered
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	if err := h.sessions.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, passwordResetMessage)
}

// switchClient moves the caller onto a freshly signed-in client id and signs out the id it held before.
func (h *AuthHandler) switchClient(c echo.Context, clientID string) {
	previous := h.sessionMW.IssueClientID(c, clientID)
	if previous == "" || previous == clientID {
		return
	}

	ctx := c.Request().Context()
	if err := h.sessions.Logout(ctx, previous); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Previous client not signed out",
			slog.Any("error", err),
		)
	}
}

func (h *AuthHandler) awaitSettled(ctx context.Context, clientID string) {
	waitCtx, cancel := context.WithTimeout(ctx, h.resolveTimeout)
	defer cancel()

	if _, err := h.sessions.Await(waitCtx, clientID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Session did not settle in time",
			slog.Any("error", err),
		)
	}
}

// validationError renders validator failures as a 400 with the offending fields.
func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.FieldErrors(err),
	)
}
