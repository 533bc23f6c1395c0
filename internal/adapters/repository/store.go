// Package repository stores the append-only enrichment history log.
package repository

import (
	"context"

	"github.com/okian/leadintel/internal/domain/model"
)

// Store provides append and read access to enrichment history.
type Store interface {
	// Append writes an entry. Entries are immutable once written.
	Append(ctx context.Context, entry model.HistoryEntry) error

	// List returns up to limit entries for a contact, newest first.
	// A limit of 0 returns every entry.
	List(ctx context.Context, contactID string, limit int) ([]model.HistoryEntry, error)

	// Latest returns the newest entry for a contact.
	// Returns ErrNotFound if the contact has no history.
	Latest(ctx context.Context, contactID string) (model.HistoryEntry, error)

	// LatestSuccessful returns the newest successful entry for a contact.
	// Returns ErrNotFound if there is none.
	LatestSuccessful(ctx context.Context, contactID string) (model.HistoryEntry, error)

	// Count returns the number of entries across all contacts.
	Count(ctx context.Context) int
}
