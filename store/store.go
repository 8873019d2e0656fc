// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/flappigotchi-server/models"
)

// Backend is a document store of high scores keyed by token ID
type Backend interface {
	// Get returns the stored record and whether one exists
	Get(ctx context.Context, tokenID string) (models.HighScore, bool, error)
	// Set creates or overwrites the record for hs.TokenID
	Set(ctx context.Context, hs models.HighScore) error
}

// ScoreStore keeps the best score per token ID
type ScoreStore struct {
	backend Backend
}

func NewScoreStore(backend Backend) *ScoreStore {
	return &ScoreStore{backend: backend}
}

// Submit stores score if it beats the current record for tokenID.
//
// The read and the write are separate backend calls, so two concurrent
// submissions for the same token can both be accepted; the last write wins.
func (s *ScoreStore) Submit(ctx context.Context, tokenID, name string, score float64) models.Result {
	existing, found, err := s.backend.Get(ctx, tokenID)
	if err != nil {
		return models.Rejected(models.ReasonBackendError, err)
	}

	if found && existing.Score >= score {
		return models.Rejected(models.ReasonNotLarger, nil)
	}

	err = s.backend.Set(ctx, models.HighScore{
		TokenID: tokenID,
		Name:    name,
		Score:   score,
	})
	if err != nil {
		return models.Rejected(models.ReasonBackendError, err)
	}

	return models.Accepted()
}

// Lookup returns the current record for tokenID
func (s *ScoreStore) Lookup(ctx context.Context, tokenID string) (models.HighScore, bool, error) {
	return s.backend.Get(ctx, tokenID)
}
