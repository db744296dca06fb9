package repository

import (
	"context"

	"dukasync/internal/domain/entity"
	"dukasync/internal/errors"
)

// ErrBusinessNameTaken is returned when a name index record already exists for a slug.
var ErrBusinessNameTaken = errors.New("business name already reserved")

// BusinessRepository persists wholesaler and shop records.
// The collection is chosen from the entity type: wholesalers or shops.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.BusinessEntity) error
}

// BusinessNameRepository maintains the wholesaler name uniqueness index.
type BusinessNameRepository interface {
	// Exists reports whether the slug is already reserved.
	Exists(ctx context.Context, slug string) (bool, error)

	// Reserve creates the index record only if none exists, returning ErrBusinessNameTaken otherwise.
	Reserve(ctx context.Context, index *entity.BusinessNameIndex) error
}
