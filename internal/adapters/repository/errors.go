package repository

import "errors"

// Sentinel kinds for history errors.
var (
	ErrNotFound     = errors.New("no enrichment history for contact")
	ErrInvalidEntry = errors.New("invalid history entry")
	ErrInvalidLimit = errors.New("invalid history limit")
)
