package session

import (
	"context"
	"sync"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

type memoryEntry struct {
	actions   []domain.SimulatedAction
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with a sliding expiry.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) ([]domain.SimulatedAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, id)
		return nil, ErrNotFound
	}
	return append([]domain.SimulatedAction{}, entry.actions...), nil
}

func (m *MemoryStore) Save(_ context.Context, id string, actions []domain.SimulatedAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = &memoryEntry{
		actions:   append([]domain.SimulatedAction{}, actions...),
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}
