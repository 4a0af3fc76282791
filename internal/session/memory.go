package session

import (
	"context"
	"sync"
	"time"

	"github.com/goldram69/gemdjsso/models"
)

type memoryEntry struct {
	session   models.SSOSession
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded map with per-entry expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore whose entries live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save implements [Store]. Expired entries are purged on every call.
func (m *MemoryStore) Save(_ context.Context, sessionID string, s models.SSOSession) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, id)
		}
	}

	m.entries[sessionID] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return nil
}

// Pop implements [Store].
func (m *MemoryStore) Pop(_ context.Context, sessionID string) (models.SSOSession, bool, error) {
	if sessionID == "" {
		return models.SSOSession{}, false, ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok {
		return models.SSOSession{}, false, nil
	}
	delete(m.entries, sessionID)

	if !m.now().Before(e.expiresAt) {
		return models.SSOSession{}, false, nil
	}
	return e.session, true, nil
}

// Close implements [Store].
func (m *MemoryStore) Close() error {
	return nil
}
