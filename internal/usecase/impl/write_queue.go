package impl

import (
	"context"
	"log/slog"
	"sync"
)

// writeQueue serializes persistence writes for one store. At most one
// write is in flight; while it runs, newer snapshots replace each other so
// only the latest is written next (last-writer-wins, matching the
// in-memory state). Failed writes are logged and dropped: memory stays the
// source of truth and the next write overwrites the divergence.
type writeQueue struct {
	name   string
	logger *slog.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	pending  func(context.Context) error
	inFlight bool
	closed   bool
	done     chan struct{}
}

func newWriteQueue(name string, logger *slog.Logger) *writeQueue {
	q := &writeQueue{
		name:   name,
		logger: logger,
		done:   make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()

	return q
}

// Enqueue schedules a snapshot write, replacing any not-yet-started one.
func (q *writeQueue) Enqueue(write func(context.Context) error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.logger.Warn("Write discarded, queue closed", slog.String("store", q.name))

		return
	}

	q.pending = write
	q.cond.Broadcast()
}

// Flush blocks until every enqueued write has completed.
func (q *writeQueue) Flush() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.pending != nil || q.inFlight {
		q.cond.Wait()
	}
}

// Close drains the queue and stops the worker.
func (q *writeQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done

		return
	}
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()

	<-q.done
}

func (q *writeQueue) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for q.pending == nil && !q.closed {
			q.cond.Wait()
		}
		if q.pending == nil && q.closed {
			q.mu.Unlock()

			return
		}
		write := q.pending
		q.pending = nil
		q.inFlight = true
		q.mu.Unlock()

		// Writes outlive the request that issued them.
		if err := write(context.Background()); err != nil {
			q.logger.Error("Persistence write failed",
				slog.String("store", q.name),
				slog.Any("error", err))
		}

		q.mu.Lock()
		q.inFlight = false
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}
