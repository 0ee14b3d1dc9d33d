package ports

import (
	"context"

	"parley/pkg/domain"
)

// SessionStore defines the interface for persisting conversation state.
// Persistence strategy (in-memory map, redis, ...) is an integration
// decision; the engine itself never touches a store.
type SessionStore interface {
	// Save persists the session.
	Save(ctx context.Context, sess *domain.Session) error

	// Load retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if it does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of known sessions.
	List(ctx context.Context) ([]string, error)
}
