package event

// Queue holds the events produced during a tick in emission order.
type Queue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue. The returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
