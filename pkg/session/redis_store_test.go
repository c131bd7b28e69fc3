package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/session"
)

func setupRedisStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return session.NewRedisStore(client, ""), mr
}

func TestRedisStore_CreateGet(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	sess := session.NewSession("tok-1", nil, time.Hour)
	sess.Set("k", "v")
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	v, ok := got.GetString("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := setupRedisStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRedisStore_Update(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	sess := session.NewSession("tok-2", nil, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	sess.Set("count", 1)
	require.NoError(t, store.Update(ctx, sess))

	missing := session.NewSession("tok-missing", nil, time.Hour)
	assert.ErrorIs(t, store.Update(ctx, missing), session.ErrSessionNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	sess := session.NewSession("tok-3", nil, time.Hour)
	require.NoError(t, store.Create(ctx, sess))
	require.NoError(t, store.Delete(ctx, "tok-3"))

	_, err := store.Get(ctx, "tok-3")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	sess := session.NewSession("tok-4", nil, time.Minute)
	require.NoError(t, store.Create(ctx, sess))

	// Redis key TTL evicts the record.
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "tok-4")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
