package firestore

import (
	"context"
	"fmt"
	"sync"
)

// memoryStore is an in-memory documentStore for repository tests.
type memoryStore struct {
	mu     sync.Mutex
	docs   map[string]any
	nextID int
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string]any)}
}

func key(collection, id string) string {
	return collection + "/" + id
}

func (s *memoryStore) get(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	doc, ok := s.docs[key(collection, id)]
	if !ok {
		return nil, errDocumentNotFound
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document %s is not a map", key(collection, id))
	}

	return m, nil
}

func (s *memoryStore) exists(_ context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return false, s.err
	}
	_, ok := s.docs[key(collection, id)]

	return ok, nil
}

func (s *memoryStore) set(_ context.Context, collection, id string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.docs[key(collection, id)] = data

	return nil
}

func (s *memoryStore) create(_ context.Context, collection, id string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	if _, ok := s.docs[key(collection, id)]; ok {
		return errDocumentExists
	}
	s.docs[key(collection, id)] = data

	return nil
}

func (s *memoryStore) add(_ context.Context, collection string, data any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	s.nextID++
	id := fmt.Sprintf("doc-%d", s.nextID)
	s.docs[key(collection, id)] = data

	return id, nil
}
