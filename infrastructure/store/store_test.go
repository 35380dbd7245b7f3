package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return s, NewRedisStore(client, "test")
}

func TestRedisStore_JSONRoundTripIsNamespaced(t *testing.T) {
	s, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, "lic-a", "business", document{Name: "A", Count: 1}))
	require.NoError(t, store.SetJSON(ctx, "lic-b", "business", document{Name: "B", Count: 2}))

	assert.True(t, s.Exists("test:lic-a:business"))
	assert.True(t, s.Exists("test:lic-b:business"))

	var got document
	found, err := store.GetJSON(ctx, "lic-a", "business", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, document{Name: "A", Count: 1}, got)

	found, err = store.GetJSON(ctx, "lic-c", "business", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, "lic-a", "business"))
	assert.False(t, s.Exists("test:lic-a:business"))
	assert.True(t, s.Exists("test:lic-b:business"))
}

func TestRedisStore_GetJSONInvalidDocument(t *testing.T) {
	s, store := setupTestRedis(t)
	require.NoError(t, s.Set("test:lic-a:business", "{quebrado"))

	var got document
	_, err := store.GetJSON(context.Background(), "lic-a", "business", &got)
	assert.Error(t, err)
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	store := NewRedisStore(nil, " ")
	assert.Equal(t, "phoenix:lic:assets", store.Key("lic", "assets"))
}

func TestRedisLocker_Acquire(t *testing.T) {
	s, store := setupTestRedis(t)
	locker := NewRedisLocker(store)
	ctx := context.Background()

	release, acquired, err := locker.Acquire(ctx, "deploy:act_1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.True(t, s.Exists("test:lock:deploy:act_1"))

	_, acquired, err = locker.Acquire(ctx, "deploy:act_1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	// contas diferentes não disputam o mesmo lock
	releaseOther, acquired, err := locker.Acquire(ctx, "deploy:act_2", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	releaseOther()

	release()
	assert.False(t, s.Exists("test:lock:deploy:act_1"))

	_, acquired, err = locker.Acquire(ctx, "deploy:act_1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisLocker_ReleaseDoesNotRemoveForeignLock(t *testing.T) {
	s, store := setupTestRedis(t)
	locker := NewRedisLocker(store)
	ctx := context.Background()

	release, acquired, err := locker.Acquire(ctx, "deploy:act_1", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// o lock expira e outro processo assume
	s.FastForward(2 * time.Second)
	_, acquired, err = locker.Acquire(ctx, "deploy:act_1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	release()
	assert.True(t, s.Exists("test:lock:deploy:act_1"))
}

func TestRedisLocker_RedisUnavailable(t *testing.T) {
	s, store := setupTestRedis(t)
	s.Close()

	_, acquired, err := NewRedisLocker(store).Acquire(context.Background(), "deploy:act_1", time.Minute)
	assert.Error(t, err)
	assert.False(t, acquired)
}
