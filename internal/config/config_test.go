package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"
  max_body_bytes: 1024

storage:
  driver: "postgres"

database:
  dsn: "postgres://u:p@localhost:5432/safewalk"
  max_conns: 4

log:
  level: "debug"
  format: "text"

rate_limit:
  rate: "10-S"

ai:
  api_key: "sk-ant-test"
  model: "claude-3-5-sonnet-latest"

speech:
  voice: "nova"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.MaxBodyBytes != 1024 {
		t.Errorf("Server.MaxBodyBytes = %d, want 1024", cfg.Server.MaxBodyBytes)
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Errorf("Storage.Driver = %q", cfg.Storage.Driver)
	}
	if cfg.Database.MaxConns != 4 {
		t.Errorf("Database.MaxConns = %d, want 4", cfg.Database.MaxConns)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.RateLimit.Rate != "10-S" || !cfg.RateLimit.Enabled {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if !cfg.AI.Enabled() || cfg.AI.Model != "claude-3-5-sonnet-latest" {
		t.Errorf("AI = %+v", cfg.AI)
	}
	if cfg.Speech.Enabled() {
		t.Error("Speech should be disabled without api_key")
	}
	if cfg.Speech.Voice != "nova" {
		t.Errorf("Speech.Voice = %q, want nova", cfg.Speech.Voice)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Storage.Driver != StorageDriverFile {
		t.Errorf("Storage.Driver = %q, want file", cfg.Storage.Driver)
	}
	if cfg.Storage.DataDir != "./data" {
		t.Errorf("Storage.DataDir = %q", cfg.Storage.DataDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.RateLimit.Rate != "60-M" {
		t.Errorf("RateLimit.Rate = %q", cfg.RateLimit.Rate)
	}
	if cfg.AI.Enabled() {
		t.Error("AI should be disabled by default")
	}
	if cfg.Speech.CacheTTL != time.Hour {
		t.Errorf("Speech.CacheTTL = %v, want 1h", cfg.Speech.CacheTTL)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SPEECH_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if !cfg.Speech.Enabled() {
		t.Error("Speech should be enabled by SPEECH_API_KEY")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080, ShutdownTimeout: time.Second, MaxBodyBytes: 1024},
		Storage:   StorageConfig{Driver: StorageDriverFile, DataDir: "./data"},
		RateLimit: RateLimitConfig{Enabled: true, Rate: "60-M"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "s3" }, true},
		{"postgres without dsn", func(c *Config) { c.Storage.Driver = StorageDriverPostgres }, true},
		{"postgres with dsn", func(c *Config) {
			c.Storage.Driver = StorageDriverPostgres
			c.Database.DSN = "postgres://localhost/db"
		}, false},
		{"empty data dir", func(c *Config) { c.Storage.DataDir = " " }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, true},
		{"bad rate", func(c *Config) { c.RateLimit.Rate = "lots" }, true},
		{"bad rate disabled", func(c *Config) {
			c.RateLimit.Rate = "lots"
			c.RateLimit.Enabled = false
		}, false},
		{"ai without timeout", func(c *Config) { c.AI.APIKey = "k" }, true},
		{"speech without timeout", func(c *Config) { c.Speech.APIKey = "k" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
