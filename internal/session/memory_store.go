package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

// MemoryStore keeps sessions in process memory, evicted after the TTL
// or earlier when the cache is full.
type MemoryStore struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewMemoryStore(sizeBytes int, ttl time.Duration) *MemoryStore {
	return newMemoryStore(freecache.NewCache(sizeBytes), ttl)
}

func newMemoryStore(cache *freecache.Cache, ttl time.Duration) *MemoryStore {
	expireSeconds := int(ttl.Seconds())
	if expireSeconds < 1 {
		expireSeconds = 1
	}
	return &MemoryStore{
		cache:         cache,
		expireSeconds: expireSeconds,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (State, error) {
	data, err := s.cache.Get([]byte(id))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("get session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return state, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set([]byte(id), data, s.expireSeconds); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.cache.Del([]byte(id))
	return nil
}

func (s *MemoryStore) EntryCount() int64 {
	return s.cache.EntryCount()
}
