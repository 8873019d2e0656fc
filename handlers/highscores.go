// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/flappigotchi-server/middleware"
	"github.com/danielhkuo/flappigotchi-server/store"
)

type HighScoreHandler struct {
	scores *store.ScoreStore
}

func NewHighScoreHandler(scores *store.ScoreStore) *HighScoreHandler {
	return &HighScoreHandler{scores: scores}
}

// Get handles GET /highscores/{tokenId}
func (h *HighScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	tokenID := r.PathValue("tokenId")
	if tokenID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tokenId is required")
		return
	}

	hs, found, err := h.scores.Lookup(r.Context(), tokenID)
	if err != nil {
		slog.Error("failed to look up high score", "error", err, "token_id", tokenID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No high score for this gotchi")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, hs)
}
