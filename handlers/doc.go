// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the game event handlers and HTTP handlers.

# Handler Types

  - GameHandler: per-session state machine for game events
  - SocketHandler: WebSocket transport feeding events to GameHandler
  - HighScoreHandler: read-only high score lookup

	sessions := session.NewRegistry()
	scores := store.NewScoreStore(backend)
	game := handlers.NewGameHandler(sessions, scores)
	socket := handlers.NewSocketHandler(game, cfg.AllowedOrigins)

# Session States

	Connected ──setGotchiData──▶ Identified ──gameStarted──▶ Playing

setGotchiData and gameStarted are accepted in any state; a second
gameStarted restarts the timer. gameOver does not change state: it checks
the claimed score against the elapsed time and, if plausible, submits it.

A gameOver is dropped (logged, never fatal) when:

  - the session is unknown
  - gameStarted was never received
  - setGotchiData was never received
  - the score is outside the accepted range
  - the score does not beat the stored record
  - the backend fails

No acknowledgment is sent to the client in any case.

# Socket Protocol

	GET /socket

Text frames carry {"event": name, "data": payload}:

	setGotchiData    {"name": "...", "tokenId": "..."}
	gameStarted
	gameOver         {"score": 12}
	handleDisconnect

A setGotchiData without a tokenId or a gameOver without a score is
logged and ignored.

handleDisconnect closes the socket from the server side. Closing the
socket, by either side, removes the session.

# High Scores

	GET /highscores/{tokenId} → HighScore JSON, or 404
*/
package handlers
