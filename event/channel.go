// Package event provides typed synchronous publish/subscribe channels
package event

// subscriber pairs a handler with the id used to cancel it
type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Channel fans a value out to its subscribers
//
// Architecture:
//   - Single-threaded dispatch, Publish runs handlers on the caller's goroutine
//   - Handlers are invoked in registration order
//   - Cancelling during dispatch takes effect from the next Publish
//
// The zero value is ready to use
type Channel[T any] struct {
	subs   []subscriber[T]
	nextID uint64
}

// Subscribe registers fn and returns a function that removes it
// Calling the returned function more than once is a no-op
func (c *Channel[T]) Subscribe(fn func(T)) (cancel func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				// Copy-on-write keeps an in-flight Publish snapshot intact
				next := make([]subscriber[T], 0, len(c.subs)-1)
				next = append(next, c.subs[:i]...)
				c.subs = append(next, c.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every subscriber registered at the time of the call
func (c *Channel[T]) Publish(v T) {
	subs := c.subs
	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of active subscribers
func (c *Channel[T]) Len() int {
	return len(c.subs)
}
