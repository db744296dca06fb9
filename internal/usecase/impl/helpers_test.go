package impl

import (
	"io"
	"log/slog"
	"testing"

	mockService "dukasync/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// permissiveMetrics accepts every observation; tests that care about metrics set their own expectations.
func permissiveMetrics(t *testing.T) *mockService.MockMetricsRecorder {
	t.Helper()

	metrics := mockService.NewMockMetricsRecorder(t)
	metrics.EXPECT().ObserveLogin(mock.Anything).Maybe()
	metrics.EXPECT().ObserveRegistration(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ObserveRegistrationStep(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ObserveRoleResolution(mock.Anything).Maybe()
	metrics.EXPECT().ObserveGuardDecision(mock.Anything).Maybe()
	metrics.EXPECT().ObserveOnboarding(mock.Anything).Maybe()

	return metrics
}
