package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const confirmKeyPrefix = "confirm:"

// RedisTokenStore keeps email confirmation tokens in Redis with a TTL.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) SaveConfirmToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, confirmKeyPrefix+token, userID, ttl).Err()
}

func (s *RedisTokenStore) GetConfirmToken(ctx context.Context, token string) (string, error) {
	return s.rdb.Get(ctx, confirmKeyPrefix+token).Result()
}

func (s *RedisTokenStore) DeleteConfirmToken(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, confirmKeyPrefix+token).Err()
}
