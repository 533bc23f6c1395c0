package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/pkg/metrics"
)

// MemoryStore is an in-memory Store. Entries are kept per contact in
// append order.
type MemoryStore struct {
	mu            sync.RWMutex
	byContact     map[string][]model.HistoryEntry
	total         int
	maxPerContact int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty history store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{byContact: make(map[string][]model.HistoryEntry)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, entry model.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(entry.ID) == "" || strings.TrimSpace(entry.ContactID) == "" {
		return fmt.Errorf("%w: id and contactId are required", ErrInvalidEntry)
	}
	entry = cloneEntry(entry)

	s.mu.Lock()
	entries := append(s.byContact[entry.ContactID], entry)
	s.total++
	if s.maxPerContact > 0 && len(entries) > s.maxPerContact {
		drop := len(entries) - s.maxPerContact
		entries = append([]model.HistoryEntry(nil), entries[drop:]...)
		s.total -= drop
	}
	s.byContact[entry.ContactID] = entries
	total := s.total
	s.mu.Unlock()

	metrics.UpdateHistoryEntries(total)
	return nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, contactID string, limit int) ([]model.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.byContact[contactID]
	n := len(entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.HistoryEntry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, cloneEntry(entries[i]))
	}
	return out, nil
}

// Latest implements Store.
func (s *MemoryStore) Latest(ctx context.Context, contactID string) (model.HistoryEntry, error) {
	return s.newest(ctx, contactID, func(model.HistoryEntry) bool { return true })
}

// LatestSuccessful implements Store.
func (s *MemoryStore) LatestSuccessful(ctx context.Context, contactID string) (model.HistoryEntry, error) {
	return s.newest(ctx, contactID, func(e model.HistoryEntry) bool { return e.Success })
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *MemoryStore) newest(ctx context.Context, contactID string, keep func(model.HistoryEntry) bool) (model.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return model.HistoryEntry{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.byContact[contactID]
	for i := len(entries) - 1; i >= 0; i-- {
		if keep(entries[i]) {
			return cloneEntry(entries[i]), nil
		}
	}
	return model.HistoryEntry{}, fmt.Errorf("%w: %s", ErrNotFound, contactID)
}

// cloneEntry copies the slices and snapshots so stored entries never alias
// caller memory.
func cloneEntry(e model.HistoryEntry) model.HistoryEntry {
	e.FieldsChanged = append(make([]string, 0, len(e.FieldsChanged)), e.FieldsChanged...)
	e.OldSnapshot = e.OldSnapshot.Clone()
	e.NewSnapshot = e.NewSnapshot.Clone()
	return e
}
