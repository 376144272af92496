package helpers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a scoped key/value capability holding JSON text. Callers receive it
// explicitly; contexts without a backing store get NopStorage.
type Storage interface {
	// Get returns the raw stored text and whether the key exists.
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes key from s into T. It reports false on a miss or when the stored
// text does not decode.
func GetJSON[T any](ctx context.Context, s Storage, key string) (T, bool) {
	var v T
	raw, ok := s.Get(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// NopStorage is the headless implementation: nothing is ever stored.
type NopStorage struct{}

func (NopStorage) Get(context.Context, string) (string, bool) { return "", false }

func (NopStorage) Set(context.Context, string, any) error { return nil }

func (NopStorage) Remove(context.Context, string) error { return nil }

// RedisStorage keeps values in redis under Prefix+key, expiring after TTL when set.
type RedisStorage struct {
	rdb    redis.Cmdable
	Prefix string
	TTL    time.Duration
}

func NewRedisStorage(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{rdb: rdb, Prefix: prefix, TTL: ttl}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.rdb.Get(ctx, s.Prefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *RedisStorage) Set(ctx context.Context, key string, value any) error {
	return RedisSetJSON(ctx, s.rdb, s.Prefix+key, value, s.TTL)
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	return RedisDel(ctx, s.rdb, s.Prefix+key)
}

// MemoryStorage is an in-process Storage.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string]string{}}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStorage) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = string(b)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

var (
	_ Storage = NopStorage{}
	_ Storage = (*RedisStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)
