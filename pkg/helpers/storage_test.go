package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefs struct {
	A int `json:"a"`
}

func newTestRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStorage(rdb, "famjamjam:", time.Hour), mr
}

func TestStorageImplementations(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRedisStorage(t)
	stores := map[string]Storage{
		"memory": NewMemoryStorage(),
		"redis":  rs,
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok := GetJSON[prefs](ctx, s, "missing")
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "k", prefs{A: 1}))
			got, ok := GetJSON[prefs](ctx, s, "k")
			require.True(t, ok)
			assert.Equal(t, prefs{A: 1}, got)

			raw, ok := s.Get(ctx, "k")
			require.True(t, ok)
			assert.JSONEq(t, `{"a":1}`, raw)

			require.NoError(t, s.Remove(ctx, "k"))
			_, ok = s.Get(ctx, "k")
			assert.False(t, ok)

			require.NoError(t, s.Remove(ctx, "never-set"))
		})
	}
}

func TestGetJSON_CorruptValueIsAbsent(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedisStorage(t)
	require.NoError(t, mr.Set("famjamjam:k", "{not json"))

	_, ok := GetJSON[prefs](ctx, rs, "k")
	assert.False(t, ok)

	raw, ok := rs.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "{not json", raw)
}

func TestRedisStorage_AppliesPrefixAndTTL(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedisStorage(t)
	require.NoError(t, rs.Set(ctx, "theme", "dark"))

	assert.True(t, mr.Exists("famjamjam:theme"))
	assert.Equal(t, time.Hour, mr.TTL("famjamjam:theme"))
}

func TestRedisStorage_UnreachableIsAbsent(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	s := NewRedisStorage(rdb, "", 0)

	_, ok := s.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.Error(t, s.Set(context.Background(), "k", 1))
}

func TestNopStorage(t *testing.T) {
	ctx := context.Background()
	var s Storage = NopStorage{}
	require.NoError(t, s.Set(ctx, "k", prefs{A: 1}))
	_, ok := GetJSON[prefs](ctx, s, "k")
	assert.False(t, ok)
	assert.NoError(t, s.Remove(ctx, "k"))
}
