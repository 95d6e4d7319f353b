package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// MemoryStore keeps sessions in a process-local map keyed by a random 64-hex id.
// Callers only ever see copies of the stored data.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Data
	logger   *slog.Logger
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := newOptions(opts)
	return &MemoryStore{
		sessions: make(map[string]*Data),
		logger:   o.logger.With(logger.Component("session"), logger.Backend(string(BackendMemory))),
	}
}

// Load returns a copy of the session stored under id, or nil if there is none.
func (m *MemoryStore) Load(ctx context.Context, id string) (*Data, error) {
	m.mu.RLock()
	data, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	// Clone outside the lock: stored entries are replaced, never mutated.
	return data.Clone(), nil
}

// Save stores a copy of data. An empty id allocates a new one; an existing id is
// overwritten unconditionally.
func (m *MemoryStore) Save(ctx context.Context, id string, data *Data) (string, error) {
	if id == "" {
		var err error
		if id, err = generateID(); err != nil {
			m.logger.ErrorContext(ctx, "failed to generate session id", logger.Error(err))
			return "", err
		}
	}

	dataCopy := data.Clone()

	m.mu.Lock()
	m.sessions[id] = dataCopy
	m.mu.Unlock()

	return id, nil
}

// Delete removes a session by id. Unknown ids are ignored.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Cleanup always reports zero: the memory store does not track expiry.
func (m *MemoryStore) Cleanup(ctx context.Context) (int, error) {
	return 0, nil
}

// Len returns the number of stored sessions
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
