package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryBlobStore is a map-backed blob store for tests and throwaway runs.
// Nothing survives the process.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBlobStore creates an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string][]byte),
	}
}

// Get decodes the blob stored under key into dest.
func (s *MemoryBlobStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	val, exists := s.blobs[key]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return true, fmt.Errorf("%w: key %s: %v", ErrCorruptBlob, key, err)
	}
	return true, nil
}

// Put stores value under key as JSON.
func (s *MemoryBlobStore) Put(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.blobs[key] = jsonValue
	s.mu.Unlock()
	return nil
}

// Delete removes the blob under key.
func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}

// PutRaw stores value without encoding. Tests use it to plant undecodable
// blobs.
func (s *MemoryBlobStore) PutRaw(key string, value []byte) {
	s.mu.Lock()
	s.blobs[key] = value
	s.mu.Unlock()
}

// Len reports how many blobs are stored.
func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
