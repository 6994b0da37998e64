package storage

import (
	"context"
	"sync"
)

type stubObject struct {
	contentType string
	data        []byte
}

// StubObjectStorage is an in-memory object store for tests and local
// development without an S3 backend.
type StubObjectStorage struct {
	mu      sync.RWMutex
	objects map[string]stubObject
}

// NewStubObjectStorage creates an empty in-memory object store
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		objects: make(map[string]stubObject),
	}
}

// PutObject stores data under the given key
func (s *StubObjectStorage) PutObject(_ context.Context, storageKey, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[storageKey] = stubObject{contentType: contentType, data: buf}
	return nil
}

// GetObject fetches the object for the given key
func (s *StubObjectStorage) GetObject(_ context.Context, storageKey string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[storageKey]
	if !ok {
		return nil, ErrObjectNotFound
	}
	buf := make([]byte, len(obj.data))
	copy(buf, obj.data)
	return buf, nil
}

// DeleteObject removes the object for the given key. Deleting a missing
// key is not an error, matching S3 semantics.
func (s *StubObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// ObjectExists checks if a key is present
func (s *StubObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}

// Len returns the number of stored objects
func (s *StubObjectStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
