package memory

import (
	"context"
	"sync"
	"time"
)

// processingMarker locks a key while the first request is still in flight.
var processingMarker = []byte("processing")

type idempotencyEntry struct {
	response  []byte
	expiresAt time.Time
}

// IdempotencyStore implements usecase.IdempotencyStore in process memory.
// Entries expire lazily on access.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	now     func() time.Time
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		entries: make(map[string]idempotencyEntry),
		now:     time.Now,
	}
}

// CheckAndSet atomically checks if key exists, sets if not.
// Returns (exists, existingValue, error).
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		if s.now().Before(entry.expiresAt) {
			return true, entry.response, nil
		}
		delete(s.entries, key)
	}

	value := response
	if value == nil {
		value = processingMarker
	}

	s.entries[key] = idempotencyEntry{
		response:  value,
		expiresAt: s.now().Add(ttl),
	}

	return false, nil, nil
}

// Update updates an existing key with the final response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = idempotencyEntry{
		response:  response,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}
