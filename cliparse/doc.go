// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318, or 443 in production)
  - Env: Environment name; "production" serves HTTPS
  - TLSCertFile, TLSKeyFile: certificate chain and key (required in production)
  - TLSCAFile: optional CA bundle appended to the served chain
  - DatabaseType: sqlite (default), postgres, redis or memory
  - DatabaseURL: connection string (required for postgres and redis)
  - Collection: high score table name or redis key prefix (default: highscores)
  - AllowedOrigins: WebSocket / CORS origins (default: *)

# CLI Flags

	-p          Server port
	-env        Environment name
	-t          Database type
	-d          Database URL
	-c          High score collection
	-tls-cert   TLS certificate chain
	-tls-key    TLS private key
	-tls-ca     TLS CA bundle

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	APP_ENV          → -env
	DATABASE_TYPE    → -t
	DATABASE_URL     → -d
	SCORE_COLLECTION → -c
	TLS_CERT_FILE    → -tls-cert
	TLS_KEY_FILE     → -tls-key
	TLS_CA_FILE      → -tls-ca
	ALLOWED_ORIGINS  (comma separated)

CLI flags take precedence over environment variables.

# Env Files

Before reading the environment, ParseFlags loads .env.<APP_ENV> and then
.env from the working directory if they exist. Values already present in
the process environment are kept.
*/
package cliparse
