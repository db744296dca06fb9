package firestore

import (
	"context"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	firestoresdk "cloud.google.com/go/firestore"
)

// profileRepository implements repository.ProfileRepository on the users collection.
type profileRepository struct {
	store documentStore
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestoresdk.Client) repository.ProfileRepository {
	return &profileRepository{store: newDocumentStore(client)}
}

// FindByID reads users/{uid}.
func (repo *profileRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := repo.store.get(ctx, constants.CollectionUsers, uid)
	if err != nil {
		if errors.Is(err, errDocumentNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return decodeProfile(uid, doc), nil
}

// Create writes users/{uid}, replacing any existing document.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if err := repo.store.set(ctx, constants.CollectionUsers, profile.UID, encodeProfile(profile)); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}
