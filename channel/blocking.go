package channel

import (
	"context"
	"sync"

	"github.com/quintans/go-trafficlight/internal/lib"
)

var (
	_ Sender[int]   = (*Blocking[int])(nil)
	_ Receiver[int] = (*Blocking[int])(nil)
)

// Blocking is an unbounded channel where Send never blocks and Receive waits until
// a value is available.
//
// Pending values are kept as a stack: Receive returns the most recently sent value
// first. Every sent value is delivered to exactly one receiver, but there is no FIFO
// guarantee between values.
type Blocking[T any] struct {
	mu      sync.Mutex
	queue   []T
	waiters *lib.WaitList
}

// New creates an empty Blocking channel.
func New[T any]() *Blocking[T] {
	return &Blocking[T]{
		waiters: lib.NewWaitList(),
	}
}

// Send pushes v and wakes up one parked receiver, if there is one.
func (b *Blocking[T]) Send(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue = append(b.queue, v)
	b.waiters.Wake()
}

// Receive blocks until a value is available and returns it.
func (b *Blocking[T]) Receive() T {
	// the background context is never done
	v, _ := b.ReceiveContext(context.Background())
	return v
}

// ReceiveContext is like Receive but gives up when ctx is done, returning ctx.Err().
func (b *Blocking[T]) ReceiveContext(ctx context.Context) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// a wake-up does not guarantee that the value is still there,
	// another receiver may have taken it in the meantime.
	for len(b.queue) == 0 {
		woken := b.waiters.Add()

		b.mu.Unlock()
		select {
		case <-woken:
			b.mu.Lock()
		case <-ctx.Done():
			b.mu.Lock()
			if !b.waiters.Remove(woken) && len(b.queue) > 0 {
				// we were picked by a Send but are leaving, pass it on
				b.waiters.Wake()
			}
			var zero T
			return zero, ctx.Err()
		}
	}

	last := len(b.queue) - 1
	v := b.queue[last]
	var zero T
	b.queue[last] = zero
	b.queue = b.queue[:last]

	return v, nil
}

// Len returns the number of values waiting to be received.
func (b *Blocking[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.queue)
}
