package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration, resolved once at startup and
// passed down explicitly; business logic never reads the environment.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8787"`
	SpreadsheetID   string        `env:"SPREADSHEET_ID"`
	SheetRange      string        `env:"SHEET_RANGE" envDefault:"Sheet1!A:D"`
	APIKey          string        `env:"GOOGLE_SHEETS_API_KEY"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"3m"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// Load resolves configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the server cannot start without. The API key
// is deliberately not required here: its absence surfaces per request as a
// configuration failure on the fetch path, not as a startup crash.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return errors.New("SPREADSHEET_ID is required")
	}
	if strings.TrimSpace(c.SheetRange) == "" {
		return errors.New("SHEET_RANGE must not be empty")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	return nil
}

// CacheKey derives the cache key identifying the upstream resource.
func (c Config) CacheKey() string {
	return c.SpreadsheetID + "/" + c.SheetRange
}
