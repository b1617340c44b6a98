package storage

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists cart state in Redis. Values are written without a TTL:
// the 12-hour expiry policy lives in cart hydration so that the stored
// timestamp, not a server-side clock, decides when a cart is stale.
type RedisStore struct {
	rdb    *redis.Client
	logger *log.Logger
}

func NewRedis(opts *redis.Options, logger *log.Logger) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(opts), logger: logger}
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) Available(ctx context.Context) bool {
	if err := s.rdb.Set(ctx, probeKey, "1", 0).Err(); err != nil {
		return false
	}
	if err := s.rdb.Del(ctx, probeKey).Err(); err != nil {
		return false
	}
	return true
}

func (s *RedisStore) Load(ctx context.Context, key string) (string, bool) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.logger.Printf("storage: load %q: %v", key, err)
		return "", false
	}
	return val, true
}

func (s *RedisStore) Save(ctx context.Context, key, value string) {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Printf("storage: save %q: %v", key, err)
	}
}

func (s *RedisStore) Remove(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Printf("storage: remove %q: %v", key, err)
	}
}
