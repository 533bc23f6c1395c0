package queue

import (
	"context"
	"sync"
	"testing"
)

func TestInMemoryQueue_BasicOperations(t *testing.T) {
	q := NewInMemoryQueue[string](WithCapacity(2))
	ctx := context.Background()

	if l := q.Len(); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}
	if !q.Enqueue(ctx, "job1") {
		t.Error("expected enqueue to succeed")
	}
	if l := q.Len(); l != 1 {
		t.Errorf("expected length 1, got %d", l)
	}
	if item := <-q.Dequeue(); item != "job1" {
		t.Errorf("expected job1, got %v", item)
	}
	if l := q.Len(); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}
}

func TestInMemoryQueue_Capacity(t *testing.T) {
	q := NewInMemoryQueue[int](WithCapacity(2))
	ctx := context.Background()

	if !q.Enqueue(ctx, 1) || !q.Enqueue(ctx, 2) {
		t.Fatal("expected enqueue to succeed")
	}
	if q.Enqueue(ctx, 3) {
		t.Error("expected enqueue to fail when full")
	}
	if q.Capacity() != 2 || q.Len() != 2 {
		t.Errorf("expected capacity 2 and length 2, got %d and %d", q.Capacity(), q.Len())
	}
}

func TestInMemoryQueue_DefaultCapacity(t *testing.T) {
	q := NewInMemoryQueue[int](WithCapacity(0))
	if q.Capacity() != defaultQueueCapacity {
		t.Errorf("expected default capacity %d, got %d", defaultQueueCapacity, q.Capacity())
	}
}

func TestInMemoryQueue_CanceledContext(t *testing.T) {
	q := NewInMemoryQueue[int](WithCapacity(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if q.Enqueue(ctx, 1) {
		t.Error("expected enqueue to fail with a canceled context")
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue[int](WithCapacity(4))
	ctx := context.Background()
	_ = q.Enqueue(ctx, 1)
	_ = q.Enqueue(ctx, 2)

	if err := q.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
	if !q.IsClosed() {
		t.Error("expected queue to be closed")
	}
	if q.Enqueue(ctx, 3) {
		t.Error("expected enqueue to fail after close")
	}

	var got []int
	for item := range q.Dequeue() {
		got = append(got, item)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected queued items to drain in order, got %v", got)
	}
}

func TestInMemoryQueue_ConcurrentAccess(t *testing.T) {
	const producers, perProducer = 10, 50
	q := NewInMemoryQueue[int](WithCapacity(producers * perProducer))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				if !q.Enqueue(ctx, id*perProducer+j) {
					t.Errorf("unexpected rejection for %d", id*perProducer+j)
				}
			}
		}(i)
	}
	wg.Wait()
	_ = q.Close()

	seen := make(map[int]bool)
	for item := range q.Dequeue() {
		seen[item] = true
	}
	if len(seen) != producers*perProducer {
		t.Errorf("expected %d distinct items, got %d", producers*perProducer, len(seen))
	}
}
