package dynp

import "context"

const defaultWatchBuffer = 64

// Watch subscribes to assignments of T on c and delivers the assigned
// values on the returned channel, using the default buffer size (64).
// The subscription lasts until ctx is cancelled, at which point the channel
// is closed.
func Watch[T any](ctx context.Context, c *SyncCollection) <-chan T {
	return WatchBuffer[T](ctx, c, defaultWatchBuffer)
}

// WatchBuffer is Watch with a caller-chosen channel buffer size.
//
// Delivery is non-blocking: when the buffer is full, further assignments
// are dropped rather than stalling the assigning goroutine. Watch requires
// a SyncCollection because cleanup runs on a separate goroutine; the
// collection's lock guarantees no send can race the close.
func WatchBuffer[T any](ctx context.Context, c *SyncCollection, size int) <-chan T {
	ch := make(chan T, size)

	// An already-cancelled context yields a closed channel.
	if ctx.Err() != nil {
		close(ch)
		return ch
	}

	sub := Subscribe(c, func(v T) {
		select {
		case ch <- v:
			// Delivered
		default:
			// Buffer full - drop to keep Assign non-blocking
		}
	})

	// Cleanup goroutine
	go func() {
		<-ctx.Done()
		c.Unsubscribe(sub)
		close(ch)
	}()

	return ch
}
