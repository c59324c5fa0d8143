package lib

// WaitList is a FIFO of parked waiters. Each waiter gets its own channel that is
// closed exactly once, by the Wake that picks it.
//
// A WaitList is not safe for concurrent use on its own: the owner must guard every
// call with the same lock that guards the condition the waiters are waiting on,
// the same way sync.Cond relies on its L.
type WaitList struct {
	waiters []chan struct{}
}

// NewWaitList creates an empty WaitList.
func NewWaitList() *WaitList {
	return &WaitList{}
}

// Add parks a new waiter at the tail and returns the channel that will be closed
// when the waiter is woken.
func (w *WaitList) Add() <-chan struct{} {
	ch := make(chan struct{})
	w.waiters = append(w.waiters, ch)
	return ch
}

// Wake releases the oldest parked waiter.
// It returns false if there was nobody to wake.
func (w *WaitList) Wake() bool {
	if len(w.waiters) == 0 {
		return false
	}

	ch := w.waiters[0]
	w.waiters[0] = nil
	w.waiters = w.waiters[1:]
	close(ch)

	return true
}

// Remove unparks a waiter that gave up waiting.
// It returns false if the waiter is not parked anymore, which means it was already woken
// and the caller now owns that wake-up.
func (w *WaitList) Remove(waiter <-chan struct{}) bool {
	for i, ch := range w.waiters {
		if ch == waiter {
			copy(w.waiters[i:], w.waiters[i+1:])
			w.waiters[len(w.waiters)-1] = nil
			w.waiters = w.waiters[:len(w.waiters)-1]
			return true
		}
	}

	return false
}

// Len returns the number of parked waiters.
func (w *WaitList) Len() int {
	return len(w.waiters)
}
