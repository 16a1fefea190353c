package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

// MemoryStore keeps the session in process memory. It does not survive restarts.
type MemoryStore struct {
	cache *freecache.Cache
}

// NewMemoryStore allocates a cache of sizeMB megabytes (freecache allocates at least 512KB).
func NewMemoryStore(sizeMB int) *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	value, err := s.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("memory store get %s: %w", key, err)
	}
	return string(value), nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	// no expiry, the session lives until logout
	if err := s.cache.Set([]byte(key), []byte(value), 0); err != nil {
		return fmt.Errorf("memory store set %s: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Del([]byte(key))
	return nil
}
