// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/flappigotchi-server/models"
)

// MemoryBackend keeps high scores in process. Scores are lost on restart.
type MemoryBackend struct {
	mu     sync.RWMutex
	scores map[string]models.HighScore
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{scores: make(map[string]models.HighScore)}
}

func (b *MemoryBackend) Get(_ context.Context, tokenID string) (models.HighScore, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	hs, ok := b.scores[tokenID]
	return hs, ok, nil
}

func (b *MemoryBackend) Set(_ context.Context, hs models.HighScore) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scores[hs.TokenID] = hs
	return nil
}
