// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

var envKeys = []string{
	"PORT", "APP_ENV", "TLS_CERT_FILE", "TLS_KEY_FILE", "TLS_CA_FILE",
	"DATABASE_TYPE", "DATABASE_URL", "SCORE_COLLECTION", "ALLOWED_ORIGINS",
}

// isolate runs the test in an empty directory with none of our env vars set,
// restoring the originals afterwards (godotenv writes straight to os env)
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	for _, k := range envKeys {
		orig, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, orig)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:flappigotchi.db" {
		t.Errorf("expected default sqlite path, got %s", cfg.DatabaseURL)
	}
	if cfg.Collection != "highscores" {
		t.Errorf("expected collection highscores, got %s", cfg.Collection)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected allowed origins [*], got %v", cfg.AllowedOrigins)
	}
	if cfg.Secure() {
		t.Error("development config should not be secure")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ALLOWED_ORIGINS", "https://flappigotchi.com, https://www.flappigotchi.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected postgres://test, got %s", cfg.DatabaseURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://www.flappigotchi.com" {
		t.Errorf("unexpected allowed origins %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "redis")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "memory", "-c", "test_scores"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("CLI should override env: expected memory, got %s", cfg.DatabaseType)
	}
	if cfg.Collection != "test_scores" {
		t.Errorf("expected collection test_scores, got %s", cfg.Collection)
	}
}

func TestParseFlags_RequiresURL(t *testing.T) {
	for _, dbType := range []string{"postgres", "redis"} {
		t.Run(dbType, func(t *testing.T) {
			isolate(t)
			if _, err := ParseFlags([]string{"-t", dbType}); err == nil {
				t.Errorf("expected error when %s has no URL", dbType)
			}
		})
	}
}

func TestParseFlags_UnknownDatabaseType(t *testing.T) {
	isolate(t)
	if _, err := ParseFlags([]string{"-t", "firestore"}); err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestParseFlags_ProductionRequiresTLS(t *testing.T) {
	isolate(t)

	if _, err := ParseFlags([]string{"-env", "production"}); err == nil {
		t.Fatal("expected error without TLS files in production")
	}

	cfg, err := ParseFlags([]string{"-env", "production", "-tls-cert", "fullchain.pem", "-tls-key", "privkey.pem"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Secure() {
		t.Error("production config should be secure")
	}
	if cfg.Port != 443 {
		t.Errorf("expected secure default port 443, got %d", cfg.Port)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "staging")

	content := "PORT=7777\nDATABASE_TYPE=memory\nSCORE_COLLECTION=staging_scores\n"
	if err := os.WriteFile(".env.staging", []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// .env.<APP_ENV> is loaded first, so .env cannot override it
	if err := os.WriteFile(".env", []byte("PORT=1111\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7777 {
		t.Errorf("expected port 7777 from .env.staging, got %d", cfg.Port)
	}
	if cfg.Collection != "staging_scores" {
		t.Errorf("expected collection staging_scores, got %s", cfg.Collection)
	}
	if cfg.Env != "staging" {
		t.Errorf("expected env staging, got %s", cfg.Env)
	}
}

func TestParseFlags_EnvFileDoesNotOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9000")

	if err := os.WriteFile(".env", []byte("PORT=1111\nDATABASE_TYPE=memory\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 {
		t.Errorf("process env should win over .env: expected 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("expected memory from .env, got %s", cfg.DatabaseType)
	}
}
