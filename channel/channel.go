// Package channel provides an unbounded blocking message channel.
package channel

import "context"

// Sender provides write access to a channel.
type Sender[T any] interface {
	Send(T)
}

// Receiver provides read access to a channel.
type Receiver[T any] interface {
	Receive() T
	ReceiveContext(ctx context.Context) (T, error)
	Len() int
}
