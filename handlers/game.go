// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/flappigotchi-server/models"
	"github.com/danielhkuo/flappigotchi-server/scoring"
	"github.com/danielhkuo/flappigotchi-server/session"
	"github.com/danielhkuo/flappigotchi-server/store"
)

// GameHandler reacts to the game events of every connection
type GameHandler struct {
	sessions *session.Registry
	scores   *store.ScoreStore
	now      func() time.Time
}

type GameOption func(*GameHandler)

// WithClock replaces time.Now for game timing
func WithClock(now func() time.Time) GameOption {
	return func(h *GameHandler) {
		h.now = now
	}
}

func NewGameHandler(sessions *session.Registry, scores *store.ScoreStore, opts ...GameOption) *GameHandler {
	h := &GameHandler{
		sessions: sessions,
		scores:   scores,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Connect registers a new connection
func (h *GameHandler) Connect(id string) error {
	if _, err := h.sessions.Connect(id); err != nil {
		return fmt.Errorf("connect %s: %w", id, err)
	}
	slog.Info("user connected", "session_id", id, "sessions", h.sessions.Len())
	return nil
}

// SetGotchiData handles setGotchiData. Overwrites any earlier identity.
func (h *GameHandler) SetGotchiData(id string, gotchi models.Gotchi) {
	if !h.sessions.SetIdentity(id, gotchi) {
		return
	}
	slog.Info("gotchi set", "session_id", id, "token_id", gotchi.TokenID, "name", gotchi.Name)
}

// GameStarted handles gameStarted. Calling it again restarts the timer.
func (h *GameHandler) GameStarted(id string) {
	if !h.sessions.SetStart(id, h.now()) {
		return
	}
	slog.Info("game started", "session_id", id)
}

// GameOver validates the claimed score against the time played and
// stores it if plausible. Nothing is reported back to the client.
func (h *GameHandler) GameOver(ctx context.Context, id string, score float64) models.Result {
	now := h.now()

	s, ok := h.sessions.Get(id)
	if !ok {
		return models.Rejected(models.ReasonUnknownSession, nil)
	}

	slog.Info("game over", "session_id", id, "score", score)

	if s.StartedAt == nil {
		slog.Warn("game over without start", "session_id", id, "score", score)
		return models.Rejected(models.ReasonNotStarted, nil)
	}
	if s.Gotchi == nil {
		slog.Warn("game over without gotchi data", "session_id", id, "score", score)
		return models.Rejected(models.ReasonNoGotchi, nil)
	}

	elapsed := scoring.ElapsedSeconds(*s.StartedAt, now)
	if !scoring.IsAccepted(score, elapsed) {
		lower, upper := scoring.ExpectedRange(elapsed)
		slog.Warn("cheater",
			"session_id", id,
			"token_id", s.Gotchi.TokenID,
			"score", score,
			"lower_bound", lower,
			"upper_bound", upper,
			"elapsed_s", elapsed,
		)
		return models.Rejected(models.ReasonOutOfRange, nil)
	}

	slog.Info("submit score",
		"session_id", id,
		"token_id", s.Gotchi.TokenID,
		"name", s.Gotchi.Name,
		"score", score,
		"played", strings.TrimSpace(humanize.RelTime(*s.StartedAt, now, "", "")),
	)

	res := h.scores.Submit(ctx, s.Gotchi.TokenID, s.Gotchi.Name, score)
	switch {
	case res.OK():
		slog.Info("high score updated", "token_id", s.Gotchi.TokenID, "score", score)
	case res.Cause != nil:
		slog.Error("score submission failed", "token_id", s.Gotchi.TokenID, "reason", res.Reason, "error", res.Cause)
	default:
		slog.Info("score not stored", "token_id", s.Gotchi.TokenID, "reason", res.Reason)
	}

	return res
}

// Disconnect drops the session whatever state it is in
func (h *GameHandler) Disconnect(id string) {
	h.sessions.Remove(id)
	slog.Info("user disconnected", "session_id", id, "sessions", h.sessions.Len())
}
