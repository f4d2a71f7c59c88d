// Package events holds the input event log shared by every task.
package events

// Queue is an append-only log of input events for the current generation.
//
// Readers do not remove events: each one keeps its own Cursor, so every
// reader observes the whole stream in order at its own pace.
type Queue struct {
	events     []Event
	closed     bool
	generation int
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. Pushing to a closed queue is ignored.
func (q *Queue) Push(e Event) {
	if q.closed {
		return
	}
	q.events = append(q.events, e)
}

// Close terminates the stream. Readers drain the remaining events and then
// observe end-of-stream.
func (q *Queue) Close() {
	q.closed = true
}

func (q *Queue) Closed() bool {
	return q.closed
}

// Len returns the number of events pushed in the current generation.
func (q *Queue) Len() int {
	return len(q.events)
}

// Reset starts a new generation: the log is emptied and reopened, and every
// cursor restarts from the beginning on its next read.
func (q *Queue) Reset() {
	q.events = q.events[:0]
	q.closed = false
	q.generation++
}

// Cursor is a reader's private position in a Queue.
type Cursor struct {
	consumed   int
	generation int
}

// Consumed returns the number of events read in the current generation.
func (c *Cursor) Consumed() int {
	return c.consumed
}

// Next returns the next unread event and advances c. ok is false when no
// event is available yet; done is true when the queue is closed and c has
// read everything.
func (q *Queue) Next(c *Cursor) (e Event, ok bool, done bool) {
	if c.generation != q.generation {
		c.generation = q.generation
		c.consumed = 0
	}
	if c.consumed < len(q.events) {
		e = q.events[c.consumed]
		c.consumed++
		return e, true, false
	}
	return Event{}, false, q.closed
}
