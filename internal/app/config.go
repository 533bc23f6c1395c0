package service

import "github.com/okian/leadintel/internal/config"

// FromConfig translates process configuration into service options.
func FromConfig(cfg *config.Config) []Option {
	minLatency, maxLatency := cfg.ProviderLatency()
	return []Option{
		WithCatalogPath(cfg.CatalogPath),
		WithRandomSeed(cfg.RandomSeed),
		WithProviderLatencyRange(minLatency, maxLatency),
		WithProviderRateLimit(cfg.ProviderRPS, cfg.ProviderBurst),
		WithEnrichmentTimeout(cfg.EnrichmentTimeout()),
		WithMaxTemplates(cfg.MaxTemplates),
		WithMaxAlternatives(cfg.MaxAlternatives),
		WithHistoryMaxPerContact(cfg.HistoryMaxPerContact),
		WithBatchWorkers(cfg.BatchWorkers),
		WithMaxBatchSize(cfg.MaxBatchSize),
	}
}
