package credentials

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a Store that forgets everything when the process exits.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	savedAt time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Set(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.savedAt = time.Now().UTC()
	return nil
}

func (m *MemoryStore) Get(_ context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != "", nil
}

func (m *MemoryStore) SavedAt(_ context.Context) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savedAt, m.token != "", nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.savedAt = time.Time{}
	return nil
}
