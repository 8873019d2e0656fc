package main

import (
	"context"
	"crypto/tls"
	"encoding/pem"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/flappigotchi-server/cliparse"
	"github.com/danielhkuo/flappigotchi-server/db"
	"github.com/danielhkuo/flappigotchi-server/handlers"
	"github.com/danielhkuo/flappigotchi-server/middleware"
	"github.com/danielhkuo/flappigotchi-server/router"
	"github.com/danielhkuo/flappigotchi-server/session"
	"github.com/danielhkuo/flappigotchi-server/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the score backend
	backend, closeBackend, err := openBackend(context.Background(), cfg)
	if err != nil {
		slog.Error("score backend unavailable", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closeBackend()
	slog.Info("Score backend ready", "type", cfg.DatabaseType, "collection", cfg.Collection)

	scores := store.NewScoreStore(backend)
	game := handlers.NewGameHandler(session.NewRegistry(), scores)
	mux := router.NewRouter(cfg, game, scores)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	if cfg.Secure() {
		tlsConfig, err := loadTLS(cfg)
		if err != nil {
			slog.Error("TLS setup failed", "error", err)
			os.Exit(1)
		}
		server.TLSConfig = tlsConfig
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "secure", cfg.Secure())
	if cfg.Secure() {
		err = server.ListenAndServeTLS("", "")
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openBackend builds the configured score backend and its cleanup func
func openBackend(ctx context.Context, cfg cliparse.Config) (store.Backend, func(), error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory:
		slog.Warn("Using in-memory scores; they will be lost on restart")
		return store.NewMemoryBackend(), func() {}, nil

	case cliparse.DatabaseRedis:
		rb, err := store.NewRedisBackend(ctx, cfg.DatabaseURL, cfg.Collection)
		if err != nil {
			return nil, nil, err
		}
		return rb, func() { rb.Close() }, nil

	case cliparse.DatabaseSQLite, cliparse.DatabasePostgres:
		dialect := db.DialectSQLite
		if cfg.DatabaseType == cliparse.DatabasePostgres {
			dialect = db.DialectPostgres
		}

		conn, err := db.Open(dialect, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		// Create schema (tables)
		if err := db.CreateSchema(conn, cfg.Collection); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store.NewSQLBackend(conn, dialect, cfg.Collection), func() { conn.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
}

// loadTLS loads the certificate chain and key, appending the CA bundle
// to the served chain when one is configured
func loadTLS(cfg cliparse.Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading key pair: %w", err)
	}

	if cfg.TLSCAFile != "" {
		raw, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA bundle: %w", err)
		}
		for {
			var block *pem.Block
			block, raw = pem.Decode(raw)
			if block == nil {
				break
			}
			if block.Type == "CERTIFICATE" {
				cert.Certificate = append(cert.Certificate, block.Bytes)
			}
		}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
