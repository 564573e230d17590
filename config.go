package tabbar

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/esimov/lucide-tabbar/utils"
)

// Config holds the settings read from the environment.
type Config struct {
	CDNURL    string        `env:"TABBAR_CDN_URL" envDefault:"https://unpkg.com/lucide-static/icons"`
	Timeout   time.Duration `env:"TABBAR_TIMEOUT" envDefault:"30s"`
	CacheSize int           `env:"TABBAR_CACHE_SIZE" envDefault:"512"`
	NoColor   string        `env:"NO_COLOR"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if !utils.IsValidUrl(cfg.CDNURL) {
		return cfg, fmt.Errorf("invalid TABBAR_CDN_URL %q: expected an absolute url", cfg.CDNURL)
	}
	if cfg.CacheSize <= 0 {
		return cfg, fmt.Errorf("invalid TABBAR_CACHE_SIZE %d: must be positive", cfg.CacheSize)
	}
	return cfg, nil
}

// Colors reports whether terminal output may be decorated.
func (c Config) Colors() bool { return c.NoColor == "" }

// Fetcher returns a fetcher for the configured CDN.
func (c Config) Fetcher() *Fetcher {
	return NewFetcher(c.CDNURL, c.Timeout)
}

// ApplyCacheSize resizes the default cache used by Process and Icon.
// The tabbar command rasterizes icons directly and does not call it.
func (c Config) ApplyCacheSize() error {
	return SetCacheSize(c.CacheSize)
}
