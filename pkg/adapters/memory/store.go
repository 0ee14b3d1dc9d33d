package memory

import (
	"context"
	"sync"

	"parley/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use. Sessions vanish with the process; use the
// redis adapter when conversations must survive restarts.
type Store struct {
	data map[string]*domain.Session
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Session),
	}
}

// Save persists a deep copy so callers cannot mutate stored state by pointer.
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	copied := sess.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = copied
	return nil
}

// Load retrieves a copy of the session.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns known session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
