package profile

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/okian/leadintel/internal/domain/model"
)

// RateLimitedProvider waits for a limiter token before delegating to the
// wrapped provider.
type RateLimitedProvider struct {
	next    Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider wraps next with a token bucket of rps tokens per
// second and the given burst. A non-positive rps returns next unchanged.
func NewRateLimitedProvider(next Provider, rps float64, burst int) Provider {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Name reports the wrapped provider name.
func (p *RateLimitedProvider) Name() string { return p.next.Name() }

// Synthesize implements Provider.
func (p *RateLimitedProvider) Synthesize(ctx context.Context, c model.Contact, industry string) (*model.Profile, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderCanceled, err)
	}
	return p.next.Synthesize(ctx, c, industry)
}
