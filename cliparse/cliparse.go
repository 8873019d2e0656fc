package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseRedis    = "redis"
	DatabaseMemory   = "memory"
)

const (
	defaultPort       = 3318
	defaultSecurePort = 443
	defaultSQLiteURL  = "file:flappigotchi.db"
	productionEnv     = "production"
)

type Config struct {
	Port           int
	Env            string
	TLSCertFile    string
	TLSKeyFile     string
	TLSCAFile      string
	DatabaseType   string
	DatabaseURL    string
	Collection     string
	AllowedOrigins []string
}

// Secure reports whether the server should serve HTTPS
func (c Config) Secure() bool {
	return c.Env == productionEnv
}

// envConfig mirrors Config for environment parsing
type envConfig struct {
	Port           int      `env:"PORT"`
	Env            string   `env:"APP_ENV" envDefault:"development"`
	TLSCertFile    string   `env:"TLS_CERT_FILE"`
	TLSKeyFile     string   `env:"TLS_KEY_FILE"`
	TLSCAFile      string   `env:"TLS_CA_FILE"`
	DatabaseType   string   `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL    string   `env:"DATABASE_URL"`
	Collection     string   `env:"SCORE_COLLECTION" envDefault:"highscores"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// ParseFlags reads flags, .env files and environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("flappigotchi-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Env, "env", "", "Environment name (production enables TLS)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres, redis or memory)")
	fs.StringVar(&cfg.Collection, "c", "", "High score table / key prefix")

	// TLS material (prefer env)
	fs.StringVar(&cfg.TLSCertFile, "tls-cert", "", "TLS certificate chain file")
	fs.StringVar(&cfg.TLSKeyFile, "tls-key", "", "TLS private key file")
	fs.StringVar(&cfg.TLSCAFile, "tls-ca", "", "TLS CA bundle file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	appEnv := cfg.Env
	if appEnv == "" {
		appEnv = os.Getenv("APP_ENV")
	}
	if err := loadEnvFiles(appEnv); err != nil {
		return Config{}, err
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// CLI flags win over environment
	if cfg.Env == "" {
		cfg.Env = ec.Env
	}
	if cfg.Port == 0 {
		cfg.Port = ec.Port
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
		if cfg.Secure() {
			cfg.Port = defaultSecurePort
		}
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = ec.DatabaseType
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = ec.DatabaseURL
	}
	if cfg.Collection == "" {
		cfg.Collection = ec.Collection
	}
	if cfg.TLSCertFile == "" {
		cfg.TLSCertFile = ec.TLSCertFile
	}
	if cfg.TLSKeyFile == "" {
		cfg.TLSKeyFile = ec.TLSKeyFile
	}
	if cfg.TLSCAFile == "" {
		cfg.TLSCAFile = ec.TLSCAFile
	}
	for _, origin := range ec.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLiteURL
		}
	case DatabasePostgres, DatabaseRedis:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.Collection == "" {
		return Config{}, errors.New("SCORE_COLLECTION must not be empty")
	}

	// TLS material - MUST be provided in production
	if cfg.Secure() {
		if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
			return Config{}, errors.New("TLS_CERT_FILE and TLS_KEY_FILE required in production")
		}
	}

	return cfg, nil
}

// loadEnvFiles loads .env.<appEnv> then .env from the working directory.
// Variables already set in the environment are never overridden.
func loadEnvFiles(appEnv string) error {
	var files []string
	if appEnv != "" {
		files = append(files, ".env."+appEnv)
	}
	files = append(files, ".env")

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}
