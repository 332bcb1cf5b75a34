package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store persists the two learner records. Records are read and written
// whole; there is no partial update. A nil result with a nil error means
// the record does not exist.
type Store interface {
	LoadProfile(ctx context.Context) (*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error

	LoadProgress(ctx context.Context) (*UserProgress, error)
	SaveProgress(ctx context.Context, up *UserProgress) error

	// Reset deletes both records together. Either both are gone
	// afterwards or neither is.
	Reset(ctx context.Context) error
}

// MemoryStore is an in-memory Store holding the two records as JSON,
// the same shape a browser keeps them under its storage keys. It backs
// tests and serves as the default when no database path is configured.
type MemoryStore struct {
	mu       sync.Mutex
	profile  []byte
	progress []byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadProfile(context.Context) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal(m.profile, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (m *MemoryStore) SaveProfile(_ context.Context, p *Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	m.mu.Lock()
	m.profile = b
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LoadProgress(context.Context) (*UserProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.progress == nil {
		return nil, nil
	}
	var up UserProgress
	if err := json.Unmarshal(m.progress, &up); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &up, nil
}

func (m *MemoryStore) SaveProgress(_ context.Context, up *UserProgress) error {
	b, err := json.Marshal(up)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	m.mu.Lock()
	m.progress = b
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Reset(context.Context) error {
	m.mu.Lock()
	m.profile = nil
	m.progress = nil
	m.mu.Unlock()
	return nil
}
