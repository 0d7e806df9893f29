package impl

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQueue_WritesEnqueuedWork(t *testing.T) {
	q := newWriteQueue("test", testLogger())
	defer q.Close()

	var mu sync.Mutex
	var written []int

	q.Enqueue(func(context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, 1)

		return nil
	})
	q.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1}, written)
}

func TestWriteQueue_CoalescesToLatestSnapshot(t *testing.T) {
	// While a write blocks, newer snapshots replace each other so only
	// the latest is written next.
	q := newWriteQueue("test", testLogger())
	defer q.Close()

	block := make(chan struct{})
	started := make(chan struct{})

	var mu sync.Mutex
	var written []int

	q.Enqueue(func(context.Context) error {
		close(started)
		<-block
		mu.Lock()
		defer mu.Unlock()
		written = append(written, 1)

		return nil
	})
	<-started

	for i := 2; i <= 5; i++ {
		i := i
		q.Enqueue(func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, i)

			return nil
		})
	}
	close(block)
	q.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 5}, written)
}

func TestWriteQueue_CloseDrainsPendingWrite(t *testing.T) {
	q := newWriteQueue("test", testLogger())

	done := false
	q.Enqueue(func(context.Context) error {
		done = true

		return nil
	})
	q.Close()

	assert.True(t, done)
}

func TestWriteQueue_EnqueueAfterCloseIsDiscarded(t *testing.T) {
	q := newWriteQueue("test", testLogger())
	q.Close()

	called := false
	q.Enqueue(func(context.Context) error {
		called = true

		return nil
	})
	q.Flush()

	assert.False(t, called)
}

func TestWriteQueue_FailedWriteDoesNotStopWorker(t *testing.T) {
	q := newWriteQueue("test", testLogger())
	defer q.Close()

	q.Enqueue(func(context.Context) error {
		return errors.New("disk full")
	})
	q.Flush()

	succeeded := false
	q.Enqueue(func(context.Context) error {
		succeeded = true

		return nil
	})
	q.Flush()

	require.True(t, succeeded)
}

func TestWriteQueue_CloseIsIdempotent(t *testing.T) {
	q := newWriteQueue("test", testLogger())
	q.Close()
	q.Close()
}
