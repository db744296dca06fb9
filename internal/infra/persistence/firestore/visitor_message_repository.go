package firestore

import (
	"context"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	firestoresdk "cloud.google.com/go/firestore"
)

type visitorMessageRepository struct {
	store documentStore
}

// NewVisitorMessageRepository is the constructor for visitorMessageRepository.
func NewVisitorMessageRepository(client *firestoresdk.Client) repository.VisitorMessageRepository {
	return &visitorMessageRepository{store: newDocumentStore(client)}
}

// Create adds a document with a generated id to visitorMessages.
func (repo *visitorMessageRepository) Create(ctx context.Context, message *entity.VisitorMessage) error {
	if _, err := repo.store.add(ctx, constants.CollectionVisitorMessages, toVisitorMessageDocument(message)); err != nil {
		return errors.Wrap(err, "failed to store visitor message")
	}

	return nil
}
