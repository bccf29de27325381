package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSubstrate stores each kind's payload under a plain Redis string
// key with no TTL.
type RedisSubstrate struct {
	client *redis.Client
}

// NewRedisSubstrate connects to Redis and verifies the connection.
func NewRedisSubstrate(redisURL string) (*RedisSubstrate, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisSubstrate{client: client}, nil
}

// NewRedisSubstrateWithClient wraps an existing client (used in tests).
func NewRedisSubstrateWithClient(client *redis.Client) *RedisSubstrate {
	return &RedisSubstrate{client: client}
}

func (s *RedisSubstrate) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, nil
}

func (s *RedisSubstrate) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisSubstrate) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisSubstrate) Close() error {
	return s.client.Close()
}
