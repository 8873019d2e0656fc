// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/flappigotchi-server/models"
)

// RedisBackend stores each high score as a JSON document under
// "<collection>:<tokenId>"
type RedisBackend struct {
	rdb        *redis.Client
	collection string
}

// NewRedisBackend connects to redisURL and pings it
func NewRedisBackend(ctx context.Context, redisURL, collection string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBackend{rdb: rdb, collection: collection}, nil
}

// NewRedisBackendFromClient wraps an existing client without pinging it
func NewRedisBackendFromClient(rdb *redis.Client, collection string) *RedisBackend {
	return &RedisBackend{rdb: rdb, collection: collection}
}

func (b *RedisBackend) key(tokenID string) string {
	return b.collection + ":" + tokenID
}

func (b *RedisBackend) Get(ctx context.Context, tokenID string) (models.HighScore, bool, error) {
	raw, err := b.rdb.Get(ctx, b.key(tokenID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.HighScore{}, false, nil
	}
	if err != nil {
		return models.HighScore{}, false, fmt.Errorf("redis get: %w", err)
	}

	var hs models.HighScore
	if err := json.Unmarshal(raw, &hs); err != nil {
		return models.HighScore{}, false, fmt.Errorf("decoding high score %s: %w", tokenID, err)
	}

	return hs, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, hs models.HighScore) error {
	raw, err := json.Marshal(hs)
	if err != nil {
		return fmt.Errorf("encoding high score: %w", err)
	}

	if err := b.rdb.Set(ctx, b.key(hs.TokenID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}
