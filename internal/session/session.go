// Package session persists the signed-in user record between requests.
package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// KeyPrefix namespaces every session record.
const KeyPrefix = "warehouseUser"

var ErrNotFound = errors.New("session not found")

// Store holds opaque serialized user records keyed by session ID.
type Store interface {
	Get(ctx context.Context, sessionID string) ([]byte, error)
	Set(ctx context.Context, sessionID string, record []byte, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

func Key(sessionID string) string {
	return KeyPrefix + ":" + sessionID
}

type entry struct {
	record    []byte
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[Key(sessionID)]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.entries, Key(sessionID))
		return nil, ErrNotFound
	}
	return append([]byte(nil), e.record...), nil
}

// Set stores record; ttl <= 0 keeps it until deleted.
func (m *MemoryStore) Set(_ context.Context, sessionID string, record []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{record: append([]byte(nil), record...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[Key(sessionID)] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, Key(sessionID))
	return nil
}
