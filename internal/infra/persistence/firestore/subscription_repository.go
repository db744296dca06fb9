package firestore

import (
	"context"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	firestoresdk "cloud.google.com/go/firestore"
)

type subscriptionRepository struct {
	store documentStore
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(client *firestoresdk.Client) repository.SubscriptionRepository {
	return &subscriptionRepository{store: newDocumentStore(client)}
}

// Create writes subscriptions/{ownerId}.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	err := repo.store.set(ctx, constants.CollectionSubscriptions, subscription.OwnerID, toSubscriptionDocument(subscription))
	if err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	return nil
}
