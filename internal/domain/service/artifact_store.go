package service

import "context"

// ArtifactStore checks published build artifacts in blob storage.
type ArtifactStore interface {
	// Enabled reports whether a bucket is configured for probing.
	Enabled() bool

	// Exists reports whether an object exists at key.
	Exists(ctx context.Context, key string) (bool, error)
}
