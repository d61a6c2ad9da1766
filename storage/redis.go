package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"maharaja-dine-service/config"
)

// RedisBlobStore keeps each collection as one JSON value in a Redis database.
// Values never expire; the store is the system of record, not a cache.
type RedisBlobStore struct {
	Client *redis.Client
}

// NewRedisBlobStore creates a blob store backed by the configured Redis
// database.
func NewRedisBlobStore(cfg *config.Config) *RedisBlobStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisBlobStore{Client: client}
}

// Ping verifies the Redis connection.
func (s *RedisBlobStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// Get decodes the value stored under key into dest.
func (s *RedisBlobStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return true, fmt.Errorf("%w: key %s: %v", ErrCorruptBlob, key, err)
	}
	return true, nil
}

// Put stores value under key as JSON.
func (s *RedisBlobStore) Put(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(ctx, key, jsonValue, 0).Err()
}

// Delete removes the value under key.
func (s *RedisBlobStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
