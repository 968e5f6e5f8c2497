package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/pastebutton/pkg/adapters/redis"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisSessionStore_Contract(t *testing.T) {
	_, client := setup(t)

	store := redis.NewFromClient(client, "contract")
	ports.RunSessionStoreContract(t, store)
}

func TestRedisSessionStore_TTL_Expiration(t *testing.T) {
	mr, client := setup(t)

	store := redis.NewFromClient(client, "session-ttl", redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.SessionImageKey, domain.PastedImageMarker))

	_, ok := store.Get(ctx, domain.SessionImageKey)
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok = store.Get(ctx, domain.SessionImageKey)
	assert.False(t, ok, "entry should expire with the session")
}

func TestRedisSessionStore_Prefix(t *testing.T) {
	mr, client := setup(t)

	store := redis.NewFromClient(client, "my-session", redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "foo", "bar"))

	// Key should be "custom:app:my-session"
	assert.True(t, mr.Exists("custom:app:my-session"), "Expected key with custom prefix to exist")
	assert.Equal(t, `"bar"`, mr.HGet("custom:app:my-session", "foo"))
}

func TestRedisSessionStore_RawValue(t *testing.T) {
	mr, client := setup(t)
	ctx := context.Background()

	// Written by another process without JSON encoding.
	mr.HSet("pastebutton:session:raw", domain.SessionImageKey, "a pasted png image file here")

	store := redis.NewFromClient(client, "raw")
	value, ok := store.Get(ctx, domain.SessionImageKey)
	require.True(t, ok)
	assert.Equal(t, "a pasted png image file here", value)
}

func TestRedisSessionStore_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := backend.NewClient(&backend.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	store := redis.NewFromClient(client, "down")
	mr.Close()

	value, ok := store.Get(context.Background(), domain.SessionImageKey)
	assert.False(t, ok)
	assert.Nil(t, value)

	assert.Error(t, store.Set(context.Background(), "k", "v"))
}
