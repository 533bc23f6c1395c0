package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrNoTemplates   = errors.New("no template could be personalized")
	ErrEmptyBatch    = errors.New("batch has no contacts")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
)
