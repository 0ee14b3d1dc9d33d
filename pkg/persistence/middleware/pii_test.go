package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/pkg/adapters/memory"
	"parley/pkg/domain"
	"parley/pkg/persistence/middleware"
)

func TestPIIMiddleware_MasksMatchingSlots(t *testing.T) {
	underlying := memory.NewStore()
	secureStore := middleware.NewPIIMiddleware([]string{"Phone", "(?i)ssn"})(underlying)

	ctx := context.Background()
	sess := domain.NewSession("conv-1")
	sess.Set("Station", "Park St")
	sess.Set("Phone", "555-0100")
	sess.Set("ssn_number", "999-99-9999")

	require.NoError(t, secureStore.Save(ctx, sess))

	// The in-flight session keeps its values.
	v, _ := sess.Get("Phone")
	assert.Equal(t, "555-0100", v, "middleware must not mutate the caller's session")

	stored, err := underlying.Load(ctx, "conv-1")
	require.NoError(t, err)

	v, _ = stored.Get("Station")
	assert.Equal(t, "Park St", v)
	v, _ = stored.Get("Phone")
	assert.Equal(t, "***", v)
	v, _ = stored.Get("ssn_number")
	assert.Equal(t, "***", v)
}

func TestPIIMiddleware_LoadReturnsMaskedValues(t *testing.T) {
	secureStore := middleware.NewPIIMiddleware([]string{"Phone"})(memory.NewStore())

	ctx := context.Background()
	sess := domain.NewSession("conv-1")
	sess.Set("Phone", "555-0100")
	require.NoError(t, secureStore.Save(ctx, sess))

	loaded, err := secureStore.Load(ctx, "conv-1")
	require.NoError(t, err)
	v, _ := loaded.Get("Phone")
	assert.Equal(t, "***", v, "masking is one-way")
}
