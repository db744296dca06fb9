package impl

import (
	"context"
	"log/slog"
	"strings"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"
	"dukasync/internal/usecase"
	"dukasync/internal/util"

	"go.uber.org/fx"
)

const (
	apkSourceStorage  = "storage"
	apkSourceFallback = "fallback"
)

// downloadService implements usecase.DownloadUsecase.
type downloadService struct {
	bucket      string
	path        string
	fallbackURL string
	artifacts   service.ArtifactStore
	qrcodes     service.QRCodeService
	logger      *slog.Logger
}

// DownloadServiceParams holds dependencies for DownloadService, injected by Fx.
type DownloadServiceParams struct {
	fx.In

	Config    *config.Config
	Artifacts service.ArtifactStore
	QRCodes   service.QRCodeService
	Logger    *slog.Logger
}

// NewDownloadService creates a new download service.
func NewDownloadService(params DownloadServiceParams) usecase.DownloadUsecase {
	cfg := params.Config.Apk

	return &downloadService{
		bucket:      util.NormalizeStorageBucket(cfg.Bucket),
		path:        strings.TrimLeft(strings.TrimSpace(cfg.Path), "/"),
		fallbackURL: strings.TrimSpace(cfg.FallbackURL),
		artifacts:   params.Artifacts,
		qrcodes:     params.QRCodes,
		logger:      params.Logger,
	}
}

// ApkLink resolves the storage URL of the APK, or the fallback URL when storage cannot serve it.
func (s *downloadService) ApkLink(ctx context.Context) (*usecase.ApkLink, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if !util.IsValidStorageBucket(s.bucket) {
		logger.Warn("Storage bucket is not configured correctly", slog.String("bucket", s.bucket))

		return s.fallback(errors.WithStack(domainerrors.ErrStorageBucketInvalid))
	}

	if s.path == "" {
		return nil, errors.WithStack(domainerrors.ErrApkPathMissing)
	}

	if s.artifacts.Enabled() {
		exists, err := s.artifacts.Exists(ctx, s.path)
		switch {
		case err != nil:
			logger.Warn("APK probe failed, serving storage URL", slog.Any("error", err))
		case !exists:
			logger.Warn("APK not found in bucket", slog.String("path", s.path))

			return s.fallback(errors.WithStack(domainerrors.ErrApkUnavailable))
		}
	}

	link := util.BuildStorageDownloadURL(s.bucket, s.path)
	if !util.IsSafeHTTPURL(link) {
		return nil, errors.WithStack(domainerrors.ErrDownloadURLInvalid)
	}

	return &usecase.ApkLink{URL: link, Source: apkSourceStorage}, nil
}

// fallback serves the configured fallback URL, or cause when none is set.
func (s *downloadService) fallback(cause error) (*usecase.ApkLink, error) {
	if s.fallbackURL == "" {
		return nil, cause
	}

	if !util.IsSafeHTTPURL(s.fallbackURL) {
		return nil, errors.WithStack(domainerrors.ErrDownloadURLInvalid)
	}

	return &usecase.ApkLink{URL: s.fallbackURL, Source: apkSourceFallback}, nil
}

// ApkQRCode renders the resolved link as a PNG QR code.
func (s *downloadService) ApkQRCode(ctx context.Context) ([]byte, error) {
	link, err := s.ApkLink(ctx)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodes.GenerateLinkQR(link.URL)
	if err != nil {
		return nil, errors.Wrap(err, "render apk qr code")
	}

	return png, nil
}
