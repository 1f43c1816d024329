package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

// MemoryStore implements ports.CollectionStore in memory.
// Used by tests and by the --ephemeral flag.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data          []byte
	schemaVersion int
}

var _ ports.CollectionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get implements CollectionReader.Get
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, key)
	}
	return append([]byte(nil), entry.data...), entry.schemaVersion, nil
}

// Keys implements CollectionReader.Keys
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Put implements CollectionWriter.Put
func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, schemaVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{data: append([]byte(nil), data...), schemaVersion: schemaVersion}
	return nil
}

// Delete implements CollectionWriter.Delete
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, key)
	}
	delete(s.entries, key)
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error { return nil }
