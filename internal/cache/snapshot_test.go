package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	IDs   []int `json:"ids"`
	Total int   `json:"total"`
}

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestKey_SortedQuery(t *testing.T) {
	a := Key("categories", url.Values{"page": {"1"}, "limit": {"15"}})
	b := Key("categories", url.Values{"limit": {"15"}, "page": {"1"}})
	assert.Equal(t, a, b)
	assert.Equal(t, "snapshot:categories:limit=15&page=1", a)
}

func TestRedisStore_SaveLoad(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "snapshot:products:", snapshot{IDs: []int{1, 2}, Total: 2}))
	assert.True(t, mr.Exists("snapshot:products:"))
	assert.Equal(t, time.Hour, mr.TTL("snapshot:products:"))

	var got snapshot
	found, err := store.Load(ctx, "snapshot:products:", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 2}, got.IDs)
	assert.Equal(t, 2, got.Total)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store, _ := setupTestRedis(t)

	var got snapshot
	found, err := store.Load(context.Background(), "snapshot:none", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", snapshot{Total: 1}))
	mr.FastForward(2 * time.Hour)

	found, err := store.Load(ctx, "k", &snapshot{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("k", "{not json"))

	found, err := store.Load(context.Background(), "k", &snapshot{})
	require.Error(t, err)
	assert.False(t, found)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	err := store.Save(context.Background(), "k", snapshot{})
	require.Error(t, err)

	_, err = store.Load(context.Background(), "k", &snapshot{})
	require.Error(t, err)
}

func TestNoop(t *testing.T) {
	var s Store = Noop{}
	require.NoError(t, s.Save(context.Background(), "k", snapshot{Total: 3}))

	found, err := s.Load(context.Background(), "k", &snapshot{})
	require.NoError(t, err)
	assert.False(t, found)
}
