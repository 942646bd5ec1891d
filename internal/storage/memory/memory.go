package memory

import (
	"context"
	"sync"
)

// MemoryStorage: in-memory реализация storage.Backend
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte // owner -> key -> value
}

// New создаёт пустой MemoryStorage
func New() *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[string]map[string][]byte),
	}
}

func (s *MemoryStorage) Get(ctx context.Context, ownerUserID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[ownerUserID][key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (s *MemoryStorage) Set(ctx context.Context, ownerUserID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned, ok := s.entries[ownerUserID]
	if !ok {
		owned = make(map[string][]byte)
		s.entries[ownerUserID] = owned
	}
	owned[key] = cloneBytes(value)
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, ownerUserID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned, ok := s.entries[ownerUserID]
	if !ok {
		return nil
	}
	delete(owned, key)
	if len(owned) == 0 {
		delete(s.entries, ownerUserID)
	}
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
