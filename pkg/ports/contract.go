package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/pkg/domain"
)

// RunSessionStoreContract verifies that a SessionStore implementation
// adheres to the interface contract. Adapter test packages call it with
// their concrete store.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sess := domain.NewSession(sessionID)
		sess.Set("Station", "Park St")
		sess.Cursor = 1

		err := store.Save(ctx, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sessionID, loaded.ID)
		assert.Equal(t, 1, loaded.Cursor)
		assert.Equal(t, domain.SessionActive, loaded.Status)

		v, ok := loaded.Get("Station")
		require.True(t, ok)
		assert.Equal(t, "Park St", v)
	})

	t.Run("Load is isolated from later mutation", func(t *testing.T) {
		sess := domain.NewSession(sessionID)
		sess.Set("Line", "Red")
		require.NoError(t, store.Save(ctx, sess))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Set("Line", "Blue")

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		v, _ := again.Get("Line")
		assert.Equal(t, "Red", v, "mutating a loaded session must not leak into the store")
	})

	t.Run("Load non-existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewSession(sessionID)))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err)

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, domain.NewSession(id1)))
		require.NoError(t, store.Save(ctx, domain.NewSession(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
