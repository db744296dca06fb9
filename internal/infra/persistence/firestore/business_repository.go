package firestore

import (
	"context"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	firestoresdk "cloud.google.com/go/firestore"
)

// businessRepository implements repository.BusinessRepository.
type businessRepository struct {
	store documentStore
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *firestoresdk.Client) repository.BusinessRepository {
	return &businessRepository{store: newDocumentStore(client)}
}

// Create writes wholesalers/{id} or shops/{id} depending on the business type.
func (repo *businessRepository) Create(ctx context.Context, business *entity.BusinessEntity) error {
	var (
		collection string
		doc        any
	)

	switch business.Type {
	case entity.RoleWholesaler:
		collection, doc = constants.CollectionWholesalers, toWholesalerDocument(business)
	case entity.RoleShopkeeper:
		collection, doc = constants.CollectionShops, toShopDocument(business)
	default:
		return errors.Errorf("no business collection for type %q", business.Type)
	}

	if err := repo.store.set(ctx, collection, business.ID, doc); err != nil {
		return errors.Wrap(err, "failed to create business")
	}

	return nil
}

// businessNameRepository implements repository.BusinessNameRepository on wholesalerNames.
type businessNameRepository struct {
	store documentStore
}

// NewBusinessNameRepository is the constructor for businessNameRepository.
func NewBusinessNameRepository(client *firestoresdk.Client) repository.BusinessNameRepository {
	return &businessNameRepository{store: newDocumentStore(client)}
}

// Exists reports whether wholesalerNames/{slug} is present.
func (repo *businessNameRepository) Exists(ctx context.Context, slug string) (bool, error) {
	exists, err := repo.store.exists(ctx, constants.CollectionWholesalerNames, slug)
	if err != nil {
		return false, errors.Wrap(err, "failed to check business name")
	}

	return exists, nil
}

// Reserve creates wholesalerNames/{slug}. An existing record is never overwritten.
func (repo *businessNameRepository) Reserve(ctx context.Context, index *entity.BusinessNameIndex) error {
	err := repo.store.create(ctx, constants.CollectionWholesalerNames, index.BusinessKey, toBusinessNameDocument(index))
	if err != nil {
		if errors.Is(err, errDocumentExists) {
			return repository.ErrBusinessNameTaken
		}

		return errors.Wrap(err, "failed to reserve business name")
	}

	return nil
}
