package usecase

import "context"

// ApkLink is the resolved Android download link.
type ApkLink struct {
	URL string `json:"url"`
	// Source is "storage" for the bucket URL or "fallback" for the configured fallback URL.
	Source string `json:"source"`
}

// DownloadUsecase resolves the APK download link.
type DownloadUsecase interface {
	ApkLink(ctx context.Context) (*ApkLink, error)
	ApkQRCode(ctx context.Context) ([]byte, error)
}
