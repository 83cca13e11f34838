package session

import (
	"context"
	"sync"
)

// Interface compliance check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps session state in a process-local map. Used when Redis
// is unavailable and by tests. State is copied on the way in and out so
// callers can't mutate stored history behind the lock.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State)}
}

// Load returns the stored state, or a fresh State for unknown sessions.
func (ms *MemoryStore) Load(_ context.Context, sessionID string) State {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	state, ok := ms.sessions[sessionID]
	if !ok {
		return State{}
	}
	state.History = append([]Turn(nil), state.History...)
	return state
}

// Save stores the session state. Never fails.
func (ms *MemoryStore) Save(_ context.Context, sessionID string, state State) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	state.History = append([]Turn(nil), state.History...)
	ms.sessions[sessionID] = state
	return nil
}

// Len returns the number of stored sessions.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.sessions)
}
