package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/pkg/adapters/memory"
	"parley/pkg/domain"
	"parley/pkg/ports"
	"parley/pkg/session"
)

func TestManager_LoadOrStart(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	sess, err := m.LoadOrStart(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", sess.ID)
	assert.Equal(t, domain.SessionActive, sess.Status)

	// The ID is reserved immediately; a second call loads, not creates.
	sess.Set("Station", "Park St")
	require.NoError(t, m.Save(ctx, sess))

	again, err := m.LoadOrStart(ctx, "conv-1")
	require.NoError(t, err)
	v, ok := again.Get("Station")
	require.True(t, ok)
	assert.Equal(t, "Park St", v)
}

// wrappingStore decorates a store and wraps every Load error, the way a
// middleware or instrumented store would.
type wrappingStore struct {
	ports.SessionStore
}

func (s *wrappingStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("decorated: %w", err)
	}
	return sess, nil
}

func TestManager_LoadOrStartWithWrappedNotFound(t *testing.T) {
	m := session.NewManager(&wrappingStore{SessionStore: memory.NewStore()})

	sess, err := m.LoadOrStart(context.Background(), "conv-1")
	require.NoError(t, err, "a wrapped not-found error must still start a session")
	assert.Equal(t, "conv-1", sess.ID)
}

func TestManager_LoadMissing(t *testing.T) {
	m := session.NewManager(memory.NewStore())

	_, err := m.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_WithLockSerializesTurns(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	sess := domain.NewSession("conv-1")
	sess.Set("count", "0")
	require.NoError(t, m.Save(ctx, sess))

	// Without per-session locking these read-modify-write cycles would race.
	const turns = 50
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.WithLock(ctx, "conv-1", func(ctx context.Context) error {
				loaded, err := m.Store().Load(ctx, "conv-1")
				if err != nil {
					return err
				}
				loaded.Cursor++
				return m.Store().Save(ctx, loaded)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := m.Load(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, turns, final.Cursor)
}

func TestManager_DeleteRemovesSession(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := m.LoadOrStart(ctx, "conv-1")
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, "conv-1"))

	_, err = m.Load(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "conv-1")
}
