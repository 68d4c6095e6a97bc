package config

import (
	"fmt"
	"strings"

	"github.com/ulule/limiter/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverFile:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("storage.data_dir is required for the file driver")
		}
	case StorageDriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", StorageDriverFile, StorageDriverPostgres, c.Storage.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.RateLimit.Enabled {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit.Rate); err != nil {
			return fmt.Errorf("rate_limit.rate: %w", err)
		}
	}

	if c.AI.Enabled() && c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be > 0 (got %s)", c.AI.Timeout)
	}
	if c.Speech.Enabled() && c.Speech.Timeout <= 0 {
		return fmt.Errorf("speech.timeout must be > 0 (got %s)", c.Speech.Timeout)
	}

	return nil
}
