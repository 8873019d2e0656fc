// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the game server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, game, scores)

# Endpoints

	GET /health               - Health check
	GET /socket               - Game WebSocket
	GET /highscores/{tokenId} - Best score for a gotchi
	GET /                     - Banner

CORS is applied by the caller around the whole mux.
*/
package router
