package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/leadintel/internal/adapters/mq/queue"
	"github.com/okian/leadintel/internal/adapters/mq/worker"
	"github.com/okian/leadintel/internal/domain/dedupe"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
	"github.com/okian/leadintel/pkg/metrics"
)

// EnrichBatch enriches contacts concurrently on the worker pool. Results are
// in input order and each one has the same shape EnrichContact returns.
// Contacts sharing a history key are enriched once and share the result.
func (s *Service) EnrichBatch(ctx context.Context, contacts []model.Contact) ([]types.EnrichmentResult, error) {
	if !s.started.Load() {
		return nil, ErrNotStarted
	}
	if len(contacts) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(contacts) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d contacts, limit %d", ErrBatchTooLarge, len(contacts), s.maxBatchSize)
	}

	start := time.Now()
	metrics.RecordBatch(len(contacts))

	keys := make([]string, len(contacts))
	for i := range contacts {
		keys[i] = contacts[i].Key()
	}
	unique, owner := dedupe.Plan(keys, dedupe.WithExempt(model.AnonymousKey))
	distinct := make([]model.Contact, len(unique))
	slot := make(map[int]int, len(unique))
	for j, i := range unique {
		distinct[j] = contacts[i]
		slot[i] = j
	}

	q := queue.NewInMemoryQueue[worker.Job](queue.WithCapacity(len(distinct)))
	out := s.pool.Run(ctx, q, distinct)
	results := make([]types.EnrichmentResult, len(contacts))
	for i := range contacts {
		results[i] = out[slot[owner[i]]]
	}

	failed := 0
	for i := range results {
		if results[i].Failed() {
			failed++
		}
	}
	s.logger.Info(ctx, "batch enrichment finished",
		logger.Int("contacts", len(contacts)),
		logger.Int("distinct", len(distinct)),
		logger.Int("failed", failed),
		logger.Int("workers", s.pool.Size()),
		logger.Duration("took", time.Since(start)),
	)
	return results, nil
}
