// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Flappigotchi game server.

Players connect over a WebSocket, report when a game starts and ends, and
the server checks each final score against the time the game lasted before
keeping it as that gotchi's high score.

# Starting the Server

With the defaults (SQLite file in the working directory, port 3318):

	go run .

With flags:

	go run . -p 3318 -t postgres -d "postgres://..."

In production (HTTPS on 443):

	APP_ENV=production TLS_CERT_FILE=fullchain.pem TLS_KEY_FILE=privkey.pem go run .

# Configuration

  - PORT (-p): Server port (default: 3318, 443 in production)
  - APP_ENV (-env): production enables TLS
  - DATABASE_TYPE (-t): sqlite, postgres, redis or memory
  - DATABASE_URL (-d): connection string
  - SCORE_COLLECTION (-c): high score table / key prefix
  - ALLOWED_ORIGINS: comma separated origins (default: *)

.env.<APP_ENV> and .env files are loaded when present.

# Architecture

  - handlers: game state machine, WebSocket transport, high score lookup
  - session: per-connection session registry
  - scoring: anti-cheat score validation
  - store: high score persistence (SQL, Redis, memory)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire and domain types
  - db: SQL connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
