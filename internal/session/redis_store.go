package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "traindiary-session||"

// RedisStore keeps the session in redis so it survives companion service restarts.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{redisClient: redisClient}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.redisClient.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.redisClient.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
