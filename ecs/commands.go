package ecs

// Commands buffers work that must run after every system in a frame has executed.
// Systems queue side effects (notifications, logging, singleton replacement) here so
// that later systems in the same frame still observe a consistent state.
type Commands struct {
	replaces []any
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// ReplaceSingleton queues an overwrite of the singleton with the value's type.
func (c *Commands) ReplaceSingleton(value any) {
	c.replaces = append(c.replaces, value)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.replaces) + len(c.defers)
}

// Flush applies all queued operations to the provided storage, resetting the buffer state.
// Singleton replacements are applied before deferred functions run.
func (c *Commands) Flush(storage *Storage) {
	for _, value := range c.replaces {
		storage.AddSingleton(value)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.replaces = c.replaces[:0]
	c.defers = c.defers[:0]
}
