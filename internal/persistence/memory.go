package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/fragrewards/internal/domain"
)

// MemoryStorage keeps records in a map. It is used by tests and by hosts
// that run without durable storage.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Write stores a copy of data at path
func (s *MemoryStorage) Write(_ context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = append([]byte(nil), data...)
	return nil
}

// Read returns a copy of the data at path
func (s *MemoryStorage) Read(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	return append([]byte(nil), data...), nil
}

// Delete removes the data at path
func (s *MemoryStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[path]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	delete(s.data, path)
	return nil
}

// Len returns the number of stored paths
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
