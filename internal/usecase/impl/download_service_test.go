package impl

import (
	"context"
	"testing"

	"dukasync/config"
	domainerrors "dukasync/internal/domain/errors"
	mockService "dukasync/internal/mocks/service"
	"dukasync/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDownloadService(t *testing.T, apk config.ApkConfig) (usecase.DownloadUsecase, *mockService.MockArtifactStore, *mockService.MockQRCodeService) {
	t.Helper()

	artifacts := mockService.NewMockArtifactStore(t)
	qrcodes := mockService.NewMockQRCodeService(t)

	svc := NewDownloadService(DownloadServiceParams{
		Config:    &config.Config{Apk: &apk},
		Artifacts: artifacts,
		QRCodes:   qrcodes,
		Logger:    discardLogger(),
	})

	return svc, artifacts, qrcodes
}

func TestDownloadService_ApkLink(t *testing.T) {
	const storageURL = "https://firebasestorage.googleapis.com/v0/b/dukapap.appspot.com/o/apk%2FDukaPap.apk?alt=media"

	tests := []struct {
		name       string
		apk        config.ApkConfig
		probe      func(a *mockService.MockArtifactStore)
		wantURL    string
		wantSource string
		wantErr    error
	}{
		{
			name:       "gs url bucket",
			apk:        config.ApkConfig{Bucket: "gs://dukapap.appspot.com", Path: "/apk/DukaPap.apk"},
			probe:      func(a *mockService.MockArtifactStore) { a.EXPECT().Enabled().Return(false) },
			wantURL:    storageURL,
			wantSource: apkSourceStorage,
		},
		{
			name: "probe finds the object",
			apk:  config.ApkConfig{Bucket: "dukapap.appspot.com", Path: "apk/DukaPap.apk"},
			probe: func(a *mockService.MockArtifactStore) {
				a.EXPECT().Enabled().Return(true)
				a.EXPECT().Exists(context.Background(), "apk/DukaPap.apk").Return(true, nil)
			},
			wantURL:    storageURL,
			wantSource: apkSourceStorage,
		},
		{
			name: "probe error still serves storage",
			apk:  config.ApkConfig{Bucket: "dukapap.appspot.com", Path: "apk/DukaPap.apk"},
			probe: func(a *mockService.MockArtifactStore) {
				a.EXPECT().Enabled().Return(true)
				a.EXPECT().Exists(context.Background(), "apk/DukaPap.apk").Return(false, errors.New("forbidden"))
			},
			wantURL:    storageURL,
			wantSource: apkSourceStorage,
		},
		{
			name: "missing object uses fallback",
			apk: config.ApkConfig{
				Bucket: "dukapap.appspot.com", Path: "apk/DukaPap.apk", FallbackURL: "https://example.com/app.apk",
			},
			probe: func(a *mockService.MockArtifactStore) {
				a.EXPECT().Enabled().Return(true)
				a.EXPECT().Exists(context.Background(), "apk/DukaPap.apk").Return(false, nil)
			},
			wantURL:    "https://example.com/app.apk",
			wantSource: apkSourceFallback,
		},
		{
			name: "missing object without fallback",
			apk:  config.ApkConfig{Bucket: "dukapap.appspot.com", Path: "apk/DukaPap.apk"},
			probe: func(a *mockService.MockArtifactStore) {
				a.EXPECT().Enabled().Return(true)
				a.EXPECT().Exists(context.Background(), "apk/DukaPap.apk").Return(false, nil)
			},
			wantErr: domainerrors.ErrApkUnavailable,
		},
		{
			name:    "invalid bucket",
			apk:     config.ApkConfig{Bucket: "bad..bucket", Path: "apk/DukaPap.apk"},
			wantErr: domainerrors.ErrStorageBucketInvalid,
		},
		{
			name:       "invalid bucket uses fallback",
			apk:        config.ApkConfig{Bucket: "", Path: "apk/DukaPap.apk", FallbackURL: "http://example.com/app.apk"},
			wantURL:    "http://example.com/app.apk",
			wantSource: apkSourceFallback,
		},
		{
			name:    "unsafe fallback",
			apk:     config.ApkConfig{Bucket: "", FallbackURL: "javascript:alert(1)"},
			wantErr: domainerrors.ErrDownloadURLInvalid,
		},
		{
			name:    "missing path",
			apk:     config.ApkConfig{Bucket: "dukapap.appspot.com", Path: "///"},
			wantErr: domainerrors.ErrApkPathMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, artifacts, _ := newTestDownloadService(t, tt.apk)
			if tt.probe != nil {
				tt.probe(artifacts)
			}

			link, err := svc.ApkLink(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, link.URL)
			assert.Equal(t, tt.wantSource, link.Source)
		})
	}
}

func TestDownloadService_ApkQRCode(t *testing.T) {
	svc, artifacts, qrcodes := newTestDownloadService(t, config.ApkConfig{Bucket: "dukapap.appspot.com", Path: "apk/DukaPap.apk"})

	artifacts.EXPECT().Enabled().Return(false)
	qrcodes.EXPECT().
		GenerateLinkQR("https://firebasestorage.googleapis.com/v0/b/dukapap.appspot.com/o/apk%2FDukaPap.apk?alt=media").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.ApkQRCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
