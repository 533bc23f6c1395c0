package service

import (
	"time"

	repository "github.com/okian/leadintel/internal/adapters/repository"
	"github.com/okian/leadintel/internal/domain/catalog"
	"github.com/okian/leadintel/internal/domain/profile"
	"github.com/okian/leadintel/internal/domain/random"
	"github.com/okian/leadintel/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog injects a template catalog. It takes precedence over WithCatalogPath.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithCatalogPath loads the catalog from a YAML file at Start. An empty path
// uses the embedded catalog.
func WithCatalogPath(path string) Option {
	return func(s *Service) { s.catalogPath = path }
}

// WithProvider injects the profile provider. It replaces the synthetic
// provider and ignores the latency and seed options.
func WithProvider(p profile.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.source = p
		}
	}
}

// WithRandom sets the random source shared by synthesis and scoring.
func WithRandom(src random.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.rng = src
		}
	}
}

// WithRandomSeed seeds the shared random source. Zero seeds from the clock.
func WithRandomSeed(seed int64) Option {
	return func(s *Service) { s.rng = random.NewSeeded(seed) }
}

// WithProviderLatencyRange sets the simulated provider latency range.
func WithProviderLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(s *Service) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.providerMinLatency = minLatency
			s.providerMaxLatency = maxLatency
		}
	}
}

// WithProviderRateLimit bounds provider calls per second. Non-positive rps
// disables the limiter.
func WithProviderRateLimit(rps float64, burst int) Option {
	return func(s *Service) {
		s.providerRPS = rps
		s.providerBurst = burst
	}
}

// WithHistoryStore sets the enrichment history store.
func WithHistoryStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.history = store
		}
	}
}

// WithHistoryMaxPerContact bounds the default history store per contact.
func WithHistoryMaxPerContact(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.historyMaxPerContact = n
		}
	}
}

// WithEnrichmentTimeout bounds one provider call. Zero disables the bound.
func WithEnrichmentTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.enrichmentTimeout = d
		}
	}
}

// WithMaxTemplates sets how many personalized templates a quick reply returns.
func WithMaxTemplates(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTemplates = n
		}
	}
}

// WithMaxAlternatives sets how many alternatives follow the most relevant template.
func WithMaxAlternatives(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxAlternatives = n
		}
	}
}

// WithClock sets the time source for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBatchWorkers sets how many contacts of a batch are enriched at once.
func WithBatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

// WithMaxBatchSize bounds the contacts accepted by EnrichBatch. Zero removes the bound.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxBatchSize = n
		}
	}
}
