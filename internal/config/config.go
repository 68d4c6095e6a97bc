package config

import "time"

// Storage drivers.
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	AI        AIConfig        `yaml:"ai"`
	Speech    SpeechConfig    `yaml:"speech"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// StorageConfig selects where the guardian, location and memory documents live.
type StorageConfig struct {
	Driver  string `yaml:"driver"   env:"STORAGE_DRIVER"   env-default:"file"`
	DataDir string `yaml:"data_dir" env:"STORAGE_DATA_DIR" env-default:"./data"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres storage driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings. An empty File logs to stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"50"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"14"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds the per-client limit for /api/ routes.
// Rate uses the "<limit>-<period>" format, e.g. "60-M" or "5-S".
type RateLimitConfig struct {
	Enabled bool   `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Rate    string `yaml:"rate"    env:"RATE_LIMIT_RATE"    env-default:"60-M"`
}

// AIConfig configures the optional chat assistant. Empty APIKey disables it.
type AIConfig struct {
	APIKey    string        `yaml:"api_key"    env:"AI_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"AI_BASE_URL"`
	Model     string        `yaml:"model"      env:"AI_MODEL"      env-default:"claude-3-5-haiku-latest"`
	MaxTokens int64         `yaml:"max_tokens" env:"AI_MAX_TOKENS" env-default:"256"`
	Timeout   time.Duration `yaml:"timeout"    env:"AI_TIMEOUT"    env-default:"8s"`
}

// Enabled reports whether an assistant should be wired.
func (c AIConfig) Enabled() bool { return c.APIKey != "" }

// SpeechConfig configures the optional text-to-speech provider. Empty APIKey
// disables it.
type SpeechConfig struct {
	APIKey   string        `yaml:"api_key"   env:"SPEECH_API_KEY"`
	BaseURL  string        `yaml:"base_url"  env:"SPEECH_BASE_URL"`
	Model    string        `yaml:"model"     env:"SPEECH_MODEL"     env-default:"tts-1"`
	Voice    string        `yaml:"voice"     env:"SPEECH_VOICE"     env-default:"alloy"`
	Timeout  time.Duration `yaml:"timeout"   env:"SPEECH_TIMEOUT"   env-default:"15s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"SPEECH_CACHE_TTL" env-default:"1h"`
}

// Enabled reports whether a speech provider should be wired.
func (c SpeechConfig) Enabled() bool { return c.APIKey != "" }
