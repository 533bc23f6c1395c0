// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/leadintel/internal/adapters/mq/worker"
	repository "github.com/okian/leadintel/internal/adapters/repository"
	"github.com/okian/leadintel/internal/domain/catalog"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/profile"
	"github.com/okian/leadintel/internal/domain/random"
	"github.com/okian/leadintel/internal/domain/ranking"
	"github.com/okian/leadintel/internal/domain/scoring"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
	"github.com/okian/leadintel/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultEnrichmentTimeout = 2 * time.Second
	defaultMaxTemplates      = 3
	defaultMaxAlternatives   = 2
	defaultMinLatency        = 50 * time.Millisecond
	defaultMaxLatency        = 150 * time.Millisecond
	defaultRandomSeed        = 42
	defaultBatchWorkers      = 4
	defaultMaxBatchSize      = 100
)

// Service orchestrates enrichment and outreach recommendation.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog  *catalog.Catalog
	source   profile.Provider
	provider profile.Provider
	scorer   *scoring.Engine
	ranker   *ranking.Ranker
	history  repository.Store
	rng      random.Source
	pool     *worker.Pool

	// Configuration
	catalogPath          string
	providerMinLatency   time.Duration
	providerMaxLatency   time.Duration
	providerRPS          float64
	providerBurst        int
	historyMaxPerContact int
	enrichmentTimeout    time.Duration
	maxTemplates         int
	maxAlternatives      int
	batchWorkers         int
	maxBatchSize         int
	now                  func() time.Time

	// State
	started atomic.Bool
	stats   counters

	// Logging
	logger logger.Logger
}

type counters struct {
	enrichments          atomic.Int64
	enrichmentsFailed    atomic.Int64
	quickReplies         atomic.Int64
	rankingFallbacks     atomic.Int64
	personalizationDrops atomic.Int64
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		providerMinLatency: defaultMinLatency,
		providerMaxLatency: defaultMaxLatency,
		enrichmentTimeout:  defaultEnrichmentTimeout,
		maxTemplates:       defaultMaxTemplates,
		maxAlternatives:    defaultMaxAlternatives,
		batchWorkers:       defaultBatchWorkers,
		maxBatchSize:       defaultMaxBatchSize,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the components that were not injected. It is idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting lead intelligence service...")

	if s.catalog == nil {
		c, err := catalog.FromPath(s.catalogPath)
		if err != nil {
			return err
		}
		s.catalog = c
	}
	if s.rng == nil {
		s.rng = random.NewSeeded(defaultRandomSeed)
	}
	base := s.source
	if base == nil {
		base = profile.NewSyntheticProfileProvider(
			profile.WithRandom(s.rng),
			profile.WithLatencyRange(s.providerMinLatency, s.providerMaxLatency),
			profile.WithClock(s.now),
		)
	}
	s.provider = profile.NewRateLimitedProvider(base, s.providerRPS, s.providerBurst)
	if s.history == nil {
		s.history = repository.NewMemoryStore(repository.WithMaxPerContact(s.historyMaxPerContact))
	}
	s.scorer = scoring.NewEngine(scoring.WithRandom(s.rng))
	s.ranker = ranking.NewRanker()
	s.pool = worker.NewPool(s.batchWorkers, s, s.logger)

	metrics.UpdateCatalogTemplates(s.catalog.Len())
	s.started.Store(true)
	s.logger.Info(ctx, "lead intelligence service started",
		logger.String("catalogVersion", s.catalog.Version()),
		logger.Int("templates", s.catalog.Len()),
		logger.String("provider", s.provider.Name()),
		logger.Duration("enrichmentTimeout", s.enrichmentTimeout),
	)
	return nil
}

// Stop marks the service stopped. It is idempotent.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started.Load() {
		return
	}
	s.started.Store(false)
	s.logger.Info(context.Background(), "lead intelligence service stopped")
}

// Templates returns catalog templates, optionally restricted to one category.
func (s *Service) Templates(category string) ([]model.TemplateDefinition, error) {
	if !s.started.Load() {
		return nil, ErrNotStarted
	}
	if category == "" {
		return s.catalog.All(), nil
	}
	return s.catalog.ByCategory(category)
}

// History returns a contact's enrichment history, newest first.
func (s *Service) History(ctx context.Context, contactID string, limit int) ([]model.HistoryEntry, error) {
	if !s.started.Load() {
		return nil, ErrNotStarted
	}
	return s.history.List(ctx, contactID, limit)
}

// CatalogVersion returns the loaded catalog version.
func (s *Service) CatalogVersion() string {
	if !s.started.Load() {
		return ""
	}
	return s.catalog.Version()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() types.Stats {
	st := types.Stats{
		EnrichmentsTotal:     s.stats.enrichments.Load(),
		EnrichmentsFailed:    s.stats.enrichmentsFailed.Load(),
		QuickRepliesTotal:    s.stats.quickReplies.Load(),
		RankingFallbacks:     s.stats.rankingFallbacks.Load(),
		PersonalizationDrops: s.stats.personalizationDrops.Load(),
		TemplatesByCategory:  map[string]int{},
	}
	if !s.started.Load() {
		return st
	}
	st.HistoryEntries = s.history.Count(context.Background())
	st.CatalogVersion = s.catalog.Version()
	st.CatalogTemplates = s.catalog.Len()
	st.TemplatesByCategory = s.catalog.CountByCategory()
	st.DataSource = s.provider.Name()

	metrics.UpdateHistoryEntries(st.HistoryEntries)
	return st
}
