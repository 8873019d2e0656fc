// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/flappigotchi-server/cliparse"
	"github.com/danielhkuo/flappigotchi-server/handlers"
	"github.com/danielhkuo/flappigotchi-server/middleware"
	"github.com/danielhkuo/flappigotchi-server/store"
)

func NewRouter(cfg cliparse.Config, game *handlers.GameHandler, scores *store.ScoreStore) *http.ServeMux {
	mux := http.NewServeMux()

	socketHandler := handlers.NewSocketHandler(game, cfg.AllowedOrigins)
	highScoreHandler := handlers.NewHighScoreHandler(scores)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game socket
	mux.HandleFunc("GET /socket", middleware.WithLogging(socketHandler.ServeWS))

	// High scores (read only)
	mux.HandleFunc("GET /highscores/{tokenId}", middleware.WithLogging(highScoreHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("flappigotchi server"))
	})

	return mux
}
