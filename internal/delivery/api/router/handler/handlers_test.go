package handler

import (
	"net/http"
	"testing"

	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	mockUsecase "dukasync/internal/mocks/usecase"
	"dukasync/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Submit(t *testing.T) {
	contact := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{Contact: contact})
	c, rec := newContext(http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","company":"Acme","message":"Hello"}`)

	contact.EXPECT().Submit(mock.Anything, usecase.ContactInput{
		Name: "Jane", Email: "jane@example.com", Company: "Acme", Message: "Hello",
	}).Return(nil)

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), contactReceivedMessage)
}

func TestContactHandler_Submit_Invalid(t *testing.T) {
	h := NewContactHandler(ContactHandlerParams{Contact: mockUsecase.NewMockContactUsecase(t)})
	c, rec := newContext(http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@example.com"}`)

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"required"`)
}

func TestContactHandler_Submit_StoreFailure(t *testing.T) {
	contact := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{Contact: contact})
	c, rec := newContext(http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"Hello"}`)

	contact.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrContactFailed.WithDetails("permission denied"), "submit"))

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "permission denied")
}

func TestDownloadHandler(t *testing.T) {
	t.Run("link", func(t *testing.T) {
		downloads := mockUsecase.NewMockDownloadUsecase(t)
		h := NewDownloadHandler(DownloadHandlerParams{Downloads: downloads})
		c, rec := newContext(http.MethodGet, "/api/downloads/apk", "")

		downloads.EXPECT().ApkLink(mock.Anything).
			Return(&usecase.ApkLink{URL: "https://example.com/app.apk", Source: "fallback"}, nil)

		require.NoError(t, h.ApkLink(c))

		assert.JSONEq(t, `{"url":"https://example.com/app.apk","source":"fallback"}`, dataOf(t, rec.Body.Bytes()))
	})

	t.Run("unavailable", func(t *testing.T) {
		downloads := mockUsecase.NewMockDownloadUsecase(t)
		h := NewDownloadHandler(DownloadHandlerParams{Downloads: downloads})
		c, rec := newContext(http.MethodGet, "/api/downloads/apk", "")

		downloads.EXPECT().ApkLink(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrApkUnavailable))

		require.NoError(t, h.ApkLink(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "APK download is currently unavailable.")
	})

	t.Run("qr code", func(t *testing.T) {
		downloads := mockUsecase.NewMockDownloadUsecase(t)
		h := NewDownloadHandler(DownloadHandlerParams{Downloads: downloads})
		c, rec := newContext(http.MethodGet, "/api/downloads/apk/qr", "")

		downloads.EXPECT().ApkQRCode(mock.Anything).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		require.NoError(t, h.ApkQRCode(c))

		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
	})
}

func TestNavigationHandler_Navigate(t *testing.T) {
	guard := mockUsecase.NewMockRouteGuardUsecase(t)
	h := NewNavigationHandler(NavigationHandlerParams{Guard: guard})
	c, rec := newContext(http.MethodGet, "/api/navigation?path=/dashboard/admin", "")
	c = withClient(c)

	guard.EXPECT().Navigate(mock.Anything, usecase.GuardSubject{ClientID: testClientID}, "/dashboard/admin").
		Return(entity.GuardDecision{
			Path:     entity.DashboardPathAdmin,
			State:    entity.GuardAuthorizedRoleMismatch,
			Redirect: entity.PathUnauthorized,
			Role:     entity.RoleCustomer,
		})

	require.NoError(t, h.Navigate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"path":"/dashboard/admin","state":"authorized_role_mismatch","allowed":false,
		"redirect":"/unauthorized","role":"customer"
	}`, dataOf(t, rec.Body.Bytes()))
}

func TestNavigationHandler_Navigate_MissingPath(t *testing.T) {
	h := NewNavigationHandler(NavigationHandlerParams{Guard: mockUsecase.NewMockRouteGuardUsecase(t)})
	c, rec := newContext(http.MethodGet, "/api/navigation", "")

	require.NoError(t, h.Navigate(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newTestDashboardHandler(t *testing.T) (*DashboardHandler, *mockUsecase.MockDashboardUsecase, *mockUsecase.MockSessionUsecase, *mockUsecase.MockRoleUsecase) {
	t.Helper()

	dashboards := mockUsecase.NewMockDashboardUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	roles := mockUsecase.NewMockRoleUsecase(t)

	return NewDashboardHandler(DashboardHandlerParams{
		Dashboards: dashboards,
		Sessions:   sessions,
		Roles:      roles,
		Logger:     discardLogger(),
	}), dashboards, sessions, roles
}

func TestDashboardHandler_Shell(t *testing.T) {
	h, dashboards, sessions, roles := newTestDashboardHandler(t)
	c, rec := newContext(http.MethodGet, "/api/dashboards/shopkeepers", "")
	c = withClient(c)
	session := &entity.Session{UserID: "uid-1"}
	profile := &entity.UserProfile{UID: "uid-1", AccountType: "shopkeeper", ShopName: "Corner Shop"}

	sessions.EXPECT().Current(testClientID).Return(entity.SessionState{Session: session})
	roles.EXPECT().Resolve(mock.Anything, testClientID, session).
		Return(entity.RoleResolution{UserID: "uid-1", Role: entity.RoleShopkeeper, Outcome: entity.RoleOutcomeResolved, Profile: profile})
	dashboards.EXPECT().Shell(mock.Anything, entity.RoleShopkeeper, session, profile).
		Return(&usecase.DashboardShell{Role: entity.RoleShopkeeper, Path: entity.DashboardPathShopkeeper, ShopName: "Corner Shop"}, nil)

	require.NoError(t, h.Shell(entity.RoleShopkeeper)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Shop")
}

func TestDashboardHandler_Shell_Bearer(t *testing.T) {
	h, dashboards, _, roles := newTestDashboardHandler(t)
	c, rec := newContext(http.MethodGet, "/api/dashboards/admin", "")
	bearer := &entity.Session{UserID: "uid-9"}
	deliverycontext.SetBearerSession(c, bearer)

	roles.EXPECT().ResolveBearer(mock.Anything, bearer).
		Return(entity.RoleResolution{UserID: "uid-9", Role: entity.RoleAdmin, Outcome: entity.RoleOutcomeResolved})
	dashboards.EXPECT().Shell(mock.Anything, entity.RoleAdmin, bearer, (*entity.UserProfile)(nil)).
		Return(&usecase.DashboardShell{Role: entity.RoleAdmin, Path: entity.DashboardPathAdmin}, nil)

	require.NoError(t, h.Shell(entity.RoleAdmin)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler_Shell_SessionEnded(t *testing.T) {
	h, _, sessions, roles := newTestDashboardHandler(t)
	c, rec := newContext(http.MethodGet, "/api/dashboards/customers", "")
	c = withClient(c)

	sessions.EXPECT().Current(testClientID).Return(entity.SessionState{})
	roles.EXPECT().Resolve(mock.Anything, testClientID, (*entity.Session)(nil)).
		Return(entity.RoleResolution{Role: entity.RoleNone, Outcome: entity.RoleOutcomeNoProfile})

	require.NoError(t, h.Shell(entity.RoleCustomer)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandler_Home(t *testing.T) {
	h, _, _, _ := newTestDashboardHandler(t)
	c, rec := newContext(http.MethodGet, "/api/dashboard", "")
	deliverycontext.SetGuardDecision(c, entity.GuardDecision{
		State: entity.GuardAuthorizedNoRoleCheck, Allowed: true, Role: entity.RoleWholesaler,
	})

	require.NoError(t, h.Home(c))

	assert.JSONEq(t, `{"role":"wholesaler","path":"/dashboard/wholesalers"}`, dataOf(t, rec.Body.Bytes()))
}
