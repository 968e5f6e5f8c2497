package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore implementation
// adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	key := "contract-test-key-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		err := store.Set(ctx, key, "bar")
		require.NoError(t, err, "Set should not return error")

		value, ok := store.Get(ctx, key)
		require.True(t, ok, "Get should find the key")
		assert.Equal(t, "bar", value)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		value, ok := store.Get(ctx, "non-existent-"+key)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, "first"))
		require.NoError(t, store.Set(ctx, key, domain.PastedImageMarker))

		value, ok := store.Get(ctx, key)
		require.True(t, ok)
		assert.Equal(t, domain.PastedImageMarker, value)
	})

	t.Run("List Values", func(t *testing.T) {
		listKey := key + "-list"
		defer func() { _ = store.Delete(ctx, listKey) }()

		require.NoError(t, store.Set(ctx, listKey, []any{"a", domain.PastedImageMarker}))

		value, ok := store.Get(ctx, listKey)
		require.True(t, ok)
		assert.Equal(t, []any{"a", domain.PastedImageMarker}, value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, "bar"))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, ok := store.Get(ctx, key)
		assert.False(t, ok, "Get after Delete should miss")

		// Deleting twice is fine
		assert.NoError(t, store.Delete(ctx, key))
	})
}
