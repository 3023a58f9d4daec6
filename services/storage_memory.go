package services

import (
	"context"
	"io"
	"sync"
)

// MemoryStorage is an in-process ObjectStorage used by tests and local
// development. It keeps objects in a map and records the order in which keys
// were uploaded, which is how tests observe the sequential upload contract.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	uploads []string

	// UploadErr forces Upload to fail for specific keys.
	UploadErr map[string]error
	// RemoveErr forces Remove to fail for specific keys.
	RemoveErr map[string]error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (s *MemoryStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if err := s.UploadErr[key]; err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[key] = data
	s.uploads = append(s.uploads, key)
	s.mu.Unlock()
	return s.PublicURL(key), nil
}

func (s *MemoryStorage) Remove(ctx context.Context, key string) error {
	if err := s.RemoveErr[key]; err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) PublicURL(key string) string {
	return "https://storage.test/portofolio/" + key
}

// Has reports whether an object exists at key.
func (s *MemoryStorage) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// Get returns the stored object bytes for key.
func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// UploadOrder returns every key ever uploaded, in upload order, including
// keys uploaded more than once.
func (s *MemoryStorage) UploadOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uploads...)
}
