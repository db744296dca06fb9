// Package firestore implements the domain repositories on top of Cloud Firestore.
package firestore

import (
	"context"

	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	firestoresdk "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errDocumentNotFound = errors.New("document not found")
	errDocumentExists   = errors.New("document already exists")
)

// documentStore is the narrow set of document operations the repositories need.
type documentStore interface {
	get(ctx context.Context, collection, id string) (map[string]any, error)
	exists(ctx context.Context, collection, id string) (bool, error)
	set(ctx context.Context, collection, id string, data any) error
	create(ctx context.Context, collection, id string, data any) error
	add(ctx context.Context, collection string, data any) (string, error)
}

type firestoreStore struct {
	client *firestoresdk.Client
}

func newDocumentStore(client *firestoresdk.Client) documentStore {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) get(ctx context.Context, collection, id string) (map[string]any, error) {
	if s.client == nil {
		return nil, errors.WithStack(repository.ErrStoreNotConfigured)
	}

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errDocumentNotFound
		}

		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}

	return snap.Data(), nil
}

func (s *firestoreStore) exists(ctx context.Context, collection, id string) (bool, error) {
	_, err := s.get(ctx, collection, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errDocumentNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *firestoreStore) set(ctx context.Context, collection, id string, data any) error {
	if s.client == nil {
		return errors.WithStack(repository.ErrStoreNotConfigured)
	}

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, id)
	}

	return nil
}

func (s *firestoreStore) create(ctx context.Context, collection, id string, data any) error {
	if s.client == nil {
		return errors.WithStack(repository.ErrStoreNotConfigured)
	}

	if _, err := s.client.Collection(collection).Doc(id).Create(ctx, data); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errDocumentExists
		}

		return errors.Wrapf(err, "create %s/%s", collection, id)
	}

	return nil
}

func (s *firestoreStore) add(ctx context.Context, collection string, data any) (string, error) {
	if s.client == nil {
		return "", errors.WithStack(repository.ErrStoreNotConfigured)
	}

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", errors.Wrapf(err, "add to %s", collection)
	}

	return ref.ID, nil
}
