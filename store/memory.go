package store

import (
	"context"
	"sync"

	"github.com/yl-doc/gearadvisor/domain"
)

// DefaultMaxTurns bounds a session's history when no explicit cap is set.
const DefaultMaxTurns = 200

// MemoryStore keeps turn logs in process memory for the process lifetime.
// Each session holds at most maxTurns turns; the oldest are dropped when the
// cap is exceeded. The session map itself is unbounded.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Turn
	maxTurns int
}

// NewMemoryStore creates an in-memory store. maxTurns <= 0 selects the
// default cap.
func NewMemoryStore(maxTurns int) *MemoryStore {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &MemoryStore{
		sessions: make(map[string][]domain.Turn),
		maxTurns: maxTurns,
	}
}

// History returns a copy of the session's turns in append order.
func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append adds turns to the session, creating it if absent.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.sessions[sessionID], turns...)
	if len(log) > s.maxTurns {
		trimmed := make([]domain.Turn, s.maxTurns)
		copy(trimmed, log[len(log)-s.maxTurns:])
		log = trimmed
	}
	s.sessions[sessionID] = log
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
