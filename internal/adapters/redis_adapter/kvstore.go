// internal/adapters/redis_adapter/kvstore.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// KVStore persists string values in Redis without expiry.
type KVStore struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// Statically assert that *KVStore implements the KeyValueStore interface.
var _ ports.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates a new Redis backed key-value store
func NewKVStore(client redis.UniversalClient, logger *slog.Logger) *KVStore {
	return &KVStore{
		client: client,
		logger: logger.With(slog.String("component", "kvstore")),
	}
}

// Get retrieves the raw value for key
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.logger.DebugContext(ctx, "key not found", slog.String("key", key))
			return "", ports.ErrKeyNotFound
		}
		s.logger.ErrorContext(ctx, "failed to get key", slog.String("key", key), "err", err)
		return "", fmt.Errorf("redis get error: %w", err)
	}
	return val, nil
}

// Set stores value under key with no TTL
func (s *KVStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to set key", slog.String("key", key), "err", err)
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "key set", slog.String("key", key), slog.Int("bytes", len(value)))
	return nil
}

// Remove deletes key
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete key", slog.String("key", key), "err", err)
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

// Ping checks if Redis is accessible
func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}
	return nil
}
