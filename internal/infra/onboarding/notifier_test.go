package onboarding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dukasync/config"
	"dukasync/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, url string) service.OnboardingNotifier {
	t.Helper()

	cfg := &config.Config{Onboarding: &config.OnboardingConfig{
		URL:                  url,
		Timeout:              5 * time.Second,
		AllowPrivateNetworks: true,
	}}
	notifier, err := NewNotifier(NotifierParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return notifier
}

func TestNotifier_Disabled(t *testing.T) {
	notifier, err := NewNotifier(NotifierParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.False(t, notifier.Enabled())
	assert.NoError(t, notifier.Notify(context.Background(), "token", &service.OnboardingPayload{}))
}

func TestNotifier_PostsPayloadWithBearer(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	notifier := newTestNotifier(t, server.URL)
	shopName := "Duka Bora"
	county := "Kisumu"

	err := notifier.Notify(context.Background(), "id-token", &service.OnboardingPayload{
		UID:          "uid-1",
		Role:         "shopkeeper",
		Email:        "shop@duka.co.ke",
		Name:         "Otieno",
		ShopName:     &shopName,
		County:       &county,
		Constituency: &county,
	})

	require.NoError(t, err)
	assert.True(t, notifier.Enabled())
	assert.Equal(t, "Bearer id-token", gotAuth)
	assert.Equal(t, "Duka Bora", gotBody["shopName"])
	assert.NotContains(t, gotBody, "businessName")
	assert.Contains(t, gotBody, "businessRegistrationNumber")
	assert.Nil(t, gotBody["businessRegistrationNumber"])
}

func TestNotifier_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newTestNotifier(t, server.URL).Notify(context.Background(), "id-token", &service.OnboardingPayload{UID: "uid-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewNotifier_RejectsBadScheme(t *testing.T) {
	_, err := NewNotifier(NotifierParams{
		Config: &config.Config{Onboarding: &config.OnboardingConfig{URL: "ftp://example.com/onboard"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestNewNotifier_GuardedClientBlocksLoopback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier, err := NewNotifier(NotifierParams{
		Config: &config.Config{Onboarding: &config.OnboardingConfig{URL: server.URL, Timeout: time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.Error(t, notifier.Notify(context.Background(), "id-token", &service.OnboardingPayload{UID: "uid-1"}))
}
