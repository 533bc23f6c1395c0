// Package dedupe collapses repeated contact keys so each distinct contact
// is processed once per batch.
package dedupe

import "sync"

// Deduper assigns every key to the position where it was first recorded.
type Deduper interface {
	// Record returns the first position recorded for key. seen is false
	// when pos is the one just recorded.
	Record(key string, pos int) (first int, seen bool)

	// Size returns the number of distinct keys recorded.
	Size() int
}

// inMemoryDeduper implements Deduper with a map. Exempt keys are never
// merged: each occurrence is its own first position.
type inMemoryDeduper struct {
	mu     sync.Mutex
	first  map[string]int
	exempt map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		first:  make(map[string]int),
		exempt: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Record implements Deduper.
func (d *inMemoryDeduper) Record(key string, pos int) (int, bool) {
	if _, ok := d.exempt[key]; ok {
		return pos, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if first, ok := d.first[key]; ok {
		return first, true
	}
	d.first[key] = pos
	return pos, false
}

// Size implements Deduper.
func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.first)
}

// Plan groups keys by first occurrence. unique holds the positions to
// process, in input order; owner maps every position to the position whose
// result it shares.
func Plan(keys []string, opts ...Option) (unique []int, owner []int) {
	d := NewInMemoryDeduper(opts...)
	owner = make([]int, len(keys))
	for i, k := range keys {
		first, seen := d.Record(k, i)
		owner[i] = first
		if !seen {
			unique = append(unique, i)
		}
	}
	return unique, owner
}
