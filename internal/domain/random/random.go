// Package random isolates the pseudo-random source used by profile
// synthesis and scoring so callers can seed or stub it.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of math/rand the domain needs.
type Source interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Locked is a mutex-guarded *rand.Rand, safe for concurrent callers.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a deterministic Source. A zero seed uses the clock.
func NewSeeded(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // synthetic data, not security sensitive
}

// Intn implements Source.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// Float64 implements Source.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Between returns an integer in [lo, hi). It returns lo when hi <= lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo)
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
