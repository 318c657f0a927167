package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the water demand dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8081"`

	// Upstream model-serving API
	APIBaseURL   string        `env:"API_BASE_URL,default=http://localhost:8000"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=10s"`

	// Forecast refresh schedule (cron spec, default every 6 hours)
	RefreshCron string `env:"REFRESH_CRON,default=0 */6 * * *"`

	// Snapshot archive configuration
	SnapshotDir string `env:"SNAPSHOT_DIR,default=./snapshots"`
	GCSBucket   string `env:"GCS_BUCKET"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// ForecastURL returns the full upstream forecast endpoint.
func (c *Config) ForecastURL() string {
	return c.APIBaseURL + "/api/forecast"
}
