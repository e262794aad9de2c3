// Package picker holds the emoji picker core: the immutable category
// index, the observable selection state, and the facade the rendering
// layer talks to.
package picker

// Cell is an observable value holder. Subscribers are invoked
// synchronously, in subscription order, on every Set.
//
// Caller contract: subscribers must not mutate the cell from inside
// their own notification. Recursive writes are undefined.
type Cell[T any] struct {
	value T
	subs  []func(T)
}

// NewCell creates a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Bind registers a subscriber. The current value is not replayed;
// callers that need it read Get first.
func (c *Cell[T]) Bind(fn func(T)) {
	c.subs = append(c.subs, fn)
}

// Set stores the value and notifies every subscriber exactly once.
func (c *Cell[T]) Set(v T) {
	c.value = v
	for _, fn := range c.subs {
		fn(v)
	}
}
