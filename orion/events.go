package orion

// Events is a frame local event channel. Systems Send events during a
// frame and a consumer Drains them once.
type Events[T any] struct {
	pending []T
}

func (e *Events[T]) Send(event T) {
	e.pending = append(e.pending, event)
}

func (e *Events[T]) Len() int {
	return len(e.pending)
}

// Drain returns all pending events and empties the channel.
func (e *Events[T]) Drain() []T {
	events := e.pending
	e.pending = nil
	return events
}
