package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
)

const outputFilePermission = 0o600

// Run executes a complete load run against cfg.BaseURL.
func Run(ctx context.Context, cfg Config, log logger.Logger) (Stats, error) {
	cfg = cfg.withDefaults()
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("loadgen")
	start := time.Now()
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("contacts", cfg.Contacts),
		logger.Int("workers", cfg.Workers),
		logger.Float64("rps", cfg.RPS),
	)

	before, err := checkService(ctx, client)
	if err != nil {
		return Stats{}, err
	}

	contacts := generateContacts(random.NewSeeded(cfg.Seed), cfg.Contacts)
	stats := Stats{Generated: len(contacts)}
	if cfg.OutputFile != "" {
		if err := saveContacts(cfg.OutputFile, contacts); err != nil {
			log.Warn(ctx, "failed to save contacts", logger.Error(err))
		}
	}

	accepted := submit(ctx, cfg, client, contacts, &stats)
	if err := verify(ctx, client, accepted, before, &stats); err != nil {
		return finish(stats, start), err
	}

	stats = finish(stats, start)
	log.Info(ctx, "load run finished",
		logger.Int("submitted", stats.Submitted),
		logger.Int("completed", stats.Completed),
		logger.Int("failed", stats.Failed),
		logger.Int("errors", stats.Errors),
		logger.Duration("duration", stats.Duration),
		logger.Float64("perSecond", stats.PerSecond),
	)
	return stats, nil
}

// checkService verifies the service is up and returns its current stats.
func checkService(ctx context.Context, client *HTTPClient) (types.Stats, error) {
	var st types.Stats
	status, _, err := client.get(ctx, "/healthz")
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if status != http.StatusOK {
		return st, fmt.Errorf("%w: status %d", ErrUnhealthy, status)
	}
	status, body, err := client.get(ctx, "/stats")
	if err != nil || status != http.StatusOK {
		return st, fmt.Errorf("%w: stats unavailable", ErrUnhealthy)
	}
	if err := json.Unmarshal(body, &st); err != nil {
		return st, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	return st, nil
}

// submit posts every contact to /enrich and returns the ids the server
// answered for.
func submit(ctx context.Context, cfg Config, client *HTTPClient, contacts []model.Contact, stats *Stats) []string {
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Workers)
	}

	var (
		submitted, completed, failed, errs atomic.Int64
		mu                                 sync.Mutex
		accepted                           []string
		wg                                 sync.WaitGroup
	)
	jobs := make(chan model.Contact, cfg.Workers*2)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						errs.Add(1)
						continue
					}
				}
				submitted.Add(1)
				status, body, err := client.post(ctx, "/enrich", c)
				if err != nil || status != http.StatusOK {
					errs.Add(1)
					continue
				}
				var res types.EnrichmentResult
				if err := json.Unmarshal(body, &res); err != nil {
					errs.Add(1)
					continue
				}
				if res.Failed() {
					failed.Add(1)
				} else {
					completed.Add(1)
				}
				mu.Lock()
				accepted = append(accepted, c.ID)
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, c := range contacts {
			select {
			case <-ctx.Done():
				return
			case jobs <- c:
			}
		}
	}()
	wg.Wait()

	stats.Submitted = int(submitted.Load())
	stats.Completed = int(completed.Load())
	stats.Failed = int(failed.Load())
	stats.Errors = int(errs.Load())
	return accepted
}

func saveContacts(path string, contacts []model.Contact) error {
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := os.WriteFile(path, data, outputFilePermission); err != nil {
		return fmt.Errorf("failed to write contacts: %w", err)
	}
	return nil
}

func finish(stats Stats, start time.Time) Stats {
	stats.Duration = time.Since(start)
	if secs := stats.Duration.Seconds(); secs > 0 {
		stats.PerSecond = float64(stats.Submitted) / secs
	}
	return stats
}
