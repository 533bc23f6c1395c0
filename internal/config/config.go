// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/leadintel/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RandomSeed seeds synthesis and scoring. Zero seeds from the clock.
	RandomSeed int64 `koanf:"random_seed"`

	// ProviderLatencyMinMS and ProviderLatencyMaxMS bound the simulated provider delay.
	ProviderLatencyMinMS int `koanf:"provider_latency_min_ms"`
	ProviderLatencyMaxMS int `koanf:"provider_latency_max_ms"`

	// ProviderRPS and ProviderBurst rate limit provider calls. Zero RPS disables the limiter.
	ProviderRPS   float64 `koanf:"provider_rps"`
	ProviderBurst int     `koanf:"provider_burst"`

	// EnrichmentTimeoutMS bounds one provider call.
	EnrichmentTimeoutMS int `koanf:"enrichment_timeout_ms"`

	// MaxTemplates and MaxAlternatives shape the quick reply result.
	MaxTemplates    int `koanf:"max_templates"`
	MaxAlternatives int `koanf:"max_alternatives"`

	// CatalogPath loads templates from a YAML file instead of the embedded catalog.
	CatalogPath string `koanf:"catalog_path"`

	// HistoryMaxPerContact caps stored history entries per contact. Zero keeps all.
	HistoryMaxPerContact int `koanf:"history_max_per_contact"`

	// BatchWorkers sets batch enrichment concurrency.
	BatchWorkers int `koanf:"batch_workers"`

	// MaxBatchSize caps contacts per batch request. Zero removes the cap.
	MaxBatchSize int `koanf:"max_batch_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            logger.FormatText,
		Addr:                 ":9080",
		RandomSeed:           42,
		ProviderLatencyMinMS: 50,
		ProviderLatencyMaxMS: 150,
		ProviderRPS:          0,
		ProviderBurst:        1,
		EnrichmentTimeoutMS:  2000,
		MaxTemplates:         3,
		MaxAlternatives:      2,
		HistoryMaxPerContact: 100,
		BatchWorkers:         4,
		MaxBatchSize:         100,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != logger.FormatText && c.LogFormat != logger.FormatJSON:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.ProviderLatencyMinMS < 0 || c.ProviderLatencyMaxMS < c.ProviderLatencyMinMS:
		return fmt.Errorf("%w: provider latency range %d..%d", ErrInvalidConfig, c.ProviderLatencyMinMS, c.ProviderLatencyMaxMS)
	case c.ProviderRPS < 0:
		return fmt.Errorf("%w: provider_rps must not be negative", ErrInvalidConfig)
	case c.EnrichmentTimeoutMS < 0:
		return fmt.Errorf("%w: enrichment_timeout_ms must not be negative", ErrInvalidConfig)
	case c.MaxTemplates < 1:
		return fmt.Errorf("%w: max_templates must be at least 1", ErrInvalidConfig)
	case c.MaxAlternatives < 0:
		return fmt.Errorf("%w: max_alternatives must not be negative", ErrInvalidConfig)
	case c.HistoryMaxPerContact < 0:
		return fmt.Errorf("%w: history_max_per_contact must not be negative", ErrInvalidConfig)
	case c.BatchWorkers < 1:
		return fmt.Errorf("%w: batch_workers must be at least 1", ErrInvalidConfig)
	case c.MaxBatchSize < 0:
		return fmt.Errorf("%w: max_batch_size must not be negative", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ProviderLatency returns the simulated latency bounds.
func (c *Config) ProviderLatency() (time.Duration, time.Duration) {
	return time.Duration(c.ProviderLatencyMinMS) * time.Millisecond,
		time.Duration(c.ProviderLatencyMaxMS) * time.Millisecond
}

// EnrichmentTimeout returns the provider call bound.
func (c *Config) EnrichmentTimeout() time.Duration {
	return time.Duration(c.EnrichmentTimeoutMS) * time.Millisecond
}
