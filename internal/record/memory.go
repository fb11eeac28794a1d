package record

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore keeps serialized collections in process memory. Used by tests
// and as a stand-in when no external store is wanted.
type memoryStore struct {
	mu   sync.RWMutex
	sets map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{
		sets: map[string][]byte{},
	}
}

func (store *memoryStore) Get(_ context.Context, key string, dest any) error {
	store.mu.RLock()
	payload, ok := store.sets[key]
	store.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to unmarshal record set (%s): %w", key, err)
	}

	return nil
}

func (store *memoryStore) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal record set (%s): %w", key, err)
	}

	store.mu.Lock()
	store.sets[key] = payload
	store.mu.Unlock()

	return nil
}
