package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements AttributeStore on Redis, for deployments where the
// skill backend runs on more than one node. One JSON value per user key.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a Redis-backed attribute store.
func NewRedis(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		keyPrefix: "memoria:attrs:",
	}
}

// Load returns the stored attributes for the user; a miss returns an empty map.
func (s *RedisStore) Load(ctx context.Context, userID string) (map[string]any, error) {
	raw, err := s.client.Get(ctx, s.keyPrefix+userID).Result()
	if err == redis.Nil {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	attrs := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("decode attributes for %s: %w", userID, err)
	}
	return attrs, nil
}

// Save overwrites the user's stored attributes wholesale. Attributes are kept
// without expiry; the profile must survive arbitrary gaps between sessions.
func (s *RedisStore) Save(ctx context.Context, userID string, attrs map[string]any) error {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("encode attributes for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+userID, string(raw), 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
