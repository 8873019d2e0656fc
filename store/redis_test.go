// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/flappigotchi-server/models"
)

// unreachableClient points at a closed port so every command fails fast
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisBackend_Key(t *testing.T) {
	b := NewRedisBackendFromClient(unreachableClient(t), "highscores")
	assert.Equal(t, "highscores:4271", b.key("4271"))
}

func TestRedisBackend_UnreachableIsBackendError(t *testing.T) {
	s := NewScoreStore(NewRedisBackendFromClient(unreachableClient(t), "highscores"))

	res := s.Submit(context.Background(), "4271", "Aave Hero", 10)
	assert.Equal(t, models.StatusRejected, res.Status)
	assert.Equal(t, models.ReasonBackendError, res.Reason)
	assert.Error(t, res.Cause)
}

func TestNewRedisBackend_BadURL(t *testing.T) {
	_, err := NewRedisBackend(context.Background(), "not a url", "highscores")
	require.Error(t, err)
}

// newMiniRedis starts an in-process server and a backend pointed at it
func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisBackend) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewRedisBackendFromClient(rdb, "highscores")
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	mr, b := newMiniRedis(t)
	ctx := context.Background()

	_, found, err := b.Get(ctx, "4271")
	require.NoError(t, err)
	assert.False(t, found, "missing key should read as absent")

	require.NoError(t, b.Set(ctx, models.HighScore{TokenID: "4271", Name: "Aave Hero", Score: 12.5}))

	raw, err := mr.Get("highscores:4271")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokenId":"4271","name":"Aave Hero","score":12.5}`, raw)

	hs, found, err := b.Get(ctx, "4271")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.HighScore{TokenID: "4271", Name: "Aave Hero", Score: 12.5}, hs)
}

func TestRedisBackend_CorruptDocument(t *testing.T) {
	mr, b := newMiniRedis(t)
	require.NoError(t, mr.Set("highscores:4271", "not json"))

	_, _, err := b.Get(context.Background(), "4271")
	assert.Error(t, err)
}

func TestRedisBackend_SubmitKeepsBest(t *testing.T) {
	_, b := newMiniRedis(t)
	s := NewScoreStore(b)
	ctx := context.Background()

	assert.True(t, s.Submit(ctx, "4271", "Aave Hero", 10).OK())
	assert.Equal(t, models.ReasonNotLarger, s.Submit(ctx, "4271", "Aave Hero", 10).Reason)
	assert.Equal(t, models.ReasonNotLarger, s.Submit(ctx, "4271", "Aave Hero", 3).Reason)
	assert.True(t, s.Submit(ctx, "4271", "Renamed", 11).OK())

	hs, found, err := s.Lookup(ctx, "4271")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.HighScore{TokenID: "4271", Name: "Renamed", Score: 11}, hs)
}

func TestNewRedisBackend_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	b, err := NewRedisBackend(context.Background(), "redis://"+mr.Addr(), "scores")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, b.Set(context.Background(), models.HighScore{TokenID: "1", Name: "a", Score: 1}))
	assert.True(t, mr.Exists("scores:1"))
}
