// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dukasync/internal/domain/entity"
	"dukasync/internal/errors"
)

var (
	// ErrProfileNotFound is returned when no profile document exists for a user id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStoreNotConfigured is returned by every repository when the hosted stores have no credentials.
	ErrStoreNotConfigured = errors.New("document store not configured")
)

// ProfileRepository persists UserProfile documents in the users collection.
type ProfileRepository interface {
	// FindByID retrieves the profile of a user. A missing document yields ErrProfileNotFound.
	FindByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create writes the profile document, overwriting any previous one.
	Create(ctx context.Context, profile *entity.UserProfile) error
}
