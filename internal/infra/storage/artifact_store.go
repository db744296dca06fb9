// Package storage probes published build artifacts in blob storage.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"dukasync/config"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes accepted by apk.probeUrl: gs://, file:// and mem://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type artifactStore struct {
	bucket *blob.Bucket
}

// NewBucketArtifactStore wraps an open bucket. A nil bucket gives a disabled store.
func NewBucketArtifactStore(bucket *blob.Bucket) service.ArtifactStore {
	return &artifactStore{bucket: bucket}
}

// ArtifactStoreParams holds dependencies for the artifact store, injected by Fx
type ArtifactStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStore opens the bucket named by apk.probeUrl. Without one the store is disabled
// and download links are built without an existence check.
func NewArtifactStore(params ArtifactStoreParams) (service.ArtifactStore, error) {
	cfg := params.Config.Apk
	if cfg == nil || strings.TrimSpace(cfg.ProbeURL) == "" {
		params.Logger.Info("APK probe bucket not configured, skipping existence checks")

		return &artifactStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, strings.TrimSpace(cfg.ProbeURL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open apk probe bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing APK probe bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return &artifactStore{bucket: bucket}, nil
}

// Enabled reports whether a bucket is open
func (s *artifactStore) Enabled() bool {
	return s.bucket != nil
}

// Exists reports whether the object is present. A disabled store reports true.
func (s *artifactStore) Exists(ctx context.Context, key string) (bool, error) {
	if s.bucket == nil {
		return true, nil
	}

	exists, err := s.bucket.Exists(ctx, strings.TrimPrefix(key, "/"))
	if err != nil {
		return false, errors.Wrapf(err, "probe %s", key)
	}

	return exists, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewArtifactStore),
)
