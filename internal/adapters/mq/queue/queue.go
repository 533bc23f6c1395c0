// Package queue provides a bounded in-memory queue with non-blocking
// enqueue and channel-based dequeue.
package queue

import (
	"context"
	"sync"

	"github.com/okian/leadintel/pkg/metrics"
)

// Default queue configuration constants.
const defaultQueueCapacity = 1024

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue[T any] interface {
	// Enqueue adds an item. It returns false if the queue is full or closed.
	Enqueue(ctx context.Context, item T) bool

	// Dequeue returns the channel items are read from. It is closed by Close
	// once drained.
	Dequeue() <-chan T

	// Len returns the current number of queued items.
	Len() int

	// Close stops accepting items. It is idempotent.
	Close() error
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue[T any] struct {
	items    chan T
	capacity int
	mu       sync.RWMutex
	closed   bool
}

var _ Queue[int] = (*InMemoryQueue[int])(nil)

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue[T any](opts ...Option) *InMemoryQueue[T] {
	cfg := settings{capacity: defaultQueueCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	metrics.UpdateBatchQueueDepth(0)
	return &InMemoryQueue[T]{items: make(chan T, cfg.capacity), capacity: cfg.capacity}
}

// Enqueue implements Queue.
func (q *InMemoryQueue[T]) Enqueue(ctx context.Context, item T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordBatchRejected()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}
	select {
	case <-ctx.Done():
		metrics.RecordBatchRejected()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
	}

	select {
	case q.items <- item:
		metrics.UpdateBatchQueueDepth(len(q.items))
		return true
	default:
		metrics.RecordBatchRejected()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue implements Queue.
func (q *InMemoryQueue[T]) Dequeue() <-chan T { return q.items }

// Len implements Queue.
func (q *InMemoryQueue[T]) Len() int {
	n := len(q.items)
	metrics.UpdateBatchQueueDepth(n)
	return n
}

// Capacity returns the configured bound.
func (q *InMemoryQueue[T]) Capacity() int { return q.capacity }

// Close implements Queue.
func (q *InMemoryQueue[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.items)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue[T]) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
