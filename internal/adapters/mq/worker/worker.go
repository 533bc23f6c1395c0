// Package worker runs contact enrichment jobs on a bounded pool of workers.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
	"github.com/okian/leadintel/pkg/metrics"
)

// Default worker configuration constants.
const defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()

// Job is one contact of a batch. Index is its position in the input.
type Job struct {
	Index   int
	Contact model.Contact
}

// Outcome pairs a job index with its enrichment result.
type Outcome struct {
	Index  int
	Result types.EnrichmentResult
}

// Enricher enriches a single contact. It never returns an error: failures
// are reported inside the result.
type Enricher interface {
	EnrichContact(ctx context.Context, c model.Contact) types.EnrichmentResult
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue() <-chan Job
}

// Worker processes jobs until its queue is drained.
type Worker interface {
	// Run starts the worker loop. It returns when the queue is closed and
	// drained or Shutdown is called.
	Run(ctx context.Context)

	// Shutdown stops the worker after the job in progress.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for enrichment jobs.
type InMemoryWorker struct {
	queue    Queue
	enricher Enricher
	results  chan<- Outcome
	name     string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
// Outcomes are sent on results, which must have room for every job.
func NewInMemoryWorker(queue Queue, enricher Enricher, results chan<- Outcome, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    queue,
		enricher: enricher,
		results:  results,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named(w.name)
	return w
}

// Run starts the worker loop. Cancellation of ctx is left to the enricher,
// which turns it into failed results, so every queued job yields an outcome.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue()
	for {
		select {
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			w.results <- Outcome{Index: job.Index, Result: w.process(ctx, job)}
		}
	}
}

// Shutdown stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Done is closed when Run returns.
func (w *InMemoryWorker) Done() <-chan struct{} { return w.done }

func (w *InMemoryWorker) process(ctx context.Context, job Job) types.EnrichmentResult {
	start := time.Now()
	res := w.enricher.EnrichContact(ctx, job.Contact)
	metrics.RecordWorkerJob(res.Status)
	w.logger.Debug(ctx, "job processed",
		logger.Int("index", job.Index),
		logger.String("contactID", job.Contact.Key()),
		logger.String("status", res.Status),
		logger.Duration("took", time.Since(start)),
	)
	return res
}

// Pool fans a batch of contacts out to a fixed number of workers.
type Pool struct {
	workerCount int
	enricher    Enricher
	logger      logger.Logger
}

// NewPool creates a worker pool. A non-positive workerCount defaults to a
// multiple of the CPU count.
func NewPool(workerCount int, enricher Enricher, log logger.Logger) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pool{
		workerCount: workerCount,
		enricher:    enricher,
		logger:      log.Named("worker-pool"),
	}
}

// Size returns the configured worker count.
func (p *Pool) Size() int { return p.workerCount }

// Run enriches every contact and returns the results in input order. Jobs
// the queue refuses because ctx is already done are reported as failed.
func (p *Pool) Run(ctx context.Context, q JobQueue, contacts []model.Contact) []types.EnrichmentResult {
	results := make([]types.EnrichmentResult, len(contacts))
	outcomes := make(chan Outcome, len(contacts))

	queued := 0
	for i := range contacts {
		if q.Enqueue(ctx, Job{Index: i, Contact: contacts[i]}) {
			queued++
			continue
		}
		results[i] = rejected(ctx)
		metrics.RecordWorkerJob(model.EnrichmentFailed)
	}
	if err := q.Close(); err != nil {
		p.logger.Error(ctx, "error closing queue", logger.Error(err))
	}

	n := min(p.workerCount, queued)
	workers := make([]*InMemoryWorker, n)
	for i := range workers {
		workers[i] = NewInMemoryWorker(q, p.enricher, outcomes,
			WithName("worker-"+strconv.Itoa(i)),
			WithLogger(p.logger),
		)
		go workers[i].Run(ctx)
	}
	for _, w := range workers {
		<-w.Done()
	}
	close(outcomes)

	for o := range outcomes {
		results[o.Index] = o.Result
	}
	p.logger.Debug(ctx, "batch processed",
		logger.Int("contacts", len(contacts)),
		logger.Int("queued", queued),
		logger.Int("workers", n),
	)
	return results
}

// JobQueue is the queue a Pool fills for one batch.
type JobQueue interface {
	Queue
	Enqueue(ctx context.Context, job Job) bool
	Close() error
}

func rejected(ctx context.Context) types.EnrichmentResult {
	msg := "job rejected by queue"
	if err := ctx.Err(); err != nil {
		msg = err.Error()
	}
	return types.EnrichmentResult{
		FieldsEnriched: []string{},
		Status:         model.EnrichmentFailed,
		Error:          msg,
	}
}
