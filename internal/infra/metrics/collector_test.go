package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveLogin("success")
	c.ObserveLogin("success")
	c.ObserveLogin("failure")
	c.ObserveRegistration("wholesaler", "success")
	c.ObserveRegistrationStep("seed-ledger", "failure")
	c.ObserveRoleResolution("no_profile")
	c.ObserveGuardDecision("authorized_role_mismatch")
	c.ObserveOnboarding("skipped")

	assert.InDelta(t, 2, testutil.ToFloat64(c.logins.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.logins.WithLabelValues("failure")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.registrations.WithLabelValues("wholesaler", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.registrationOps.WithLabelValues("seed-ledger", "failure")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.roleResolutions.WithLabelValues("no_profile")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.guardDecisions.WithLabelValues("authorized_role_mismatch")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.onboarding.WithLabelValues("skipped")), 0)
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.ObserveHTTPRequest(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dukasync_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
