// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the high score schema.

# Connecting

	conn, err := db.Open(db.DialectSQLite, "file:flappigotchi.db")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

Open pings the database before returning. SQLite connections are limited to
a single open connection.

# Schema Creation

	if err := db.CreateSchema(conn, "highscores"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The table name comes from
configuration and must be lowercase letters, digits, and underscores.

# Tables

	{table}
	  token_id   TEXT PRIMARY KEY
	  name       TEXT NOT NULL
	  score      DOUBLE PRECISION NOT NULL
	  updated_at TIMESTAMP NOT NULL

Indexed on score.
*/
package db
