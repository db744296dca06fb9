package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dukasync/config"
	"dukasync/internal/delivery/api/middleware"
	"dukasync/internal/delivery/api/validator"
	deliverycontext "dukasync/internal/delivery/context"
	mockUsecase "dukasync/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
)

const testClientID = "4b0c1a7e-2a57-4a53-9d0c-2cf7f9a0b8d1"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{CookieName: "dukasync_sid", ResolveTimeout: time.Second},
	}
}

// newContext builds an echo context with the API's validator and error handler.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withClient(c echo.Context) echo.Context {
	deliverycontext.SetClientID(c, testClientID)

	return c
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockSessionUsecase, *mockUsecase.MockRoleUsecase, *mockUsecase.MockRegistrationUsecase) {
	t.Helper()

	sessions := mockUsecase.NewMockSessionUsecase(t)
	roles := mockUsecase.NewMockRoleUsecase(t)
	registration := mockUsecase.NewMockRegistrationUsecase(t)
	cfg := testConfig()

	h := NewAuthHandler(AuthHandlerParams{
		Sessions:     sessions,
		Roles:        roles,
		Registration: registration,
		SessionMW: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			Sessions: sessions,
			Config:   cfg,
			Logger:   discardLogger(),
		}),
		Config: cfg,
		Logger: discardLogger(),
	})

	return h, sessions, roles, registration
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
