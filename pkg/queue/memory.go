// queue package

package queue

import "sync"

const (
	// QueueBufferSize represents the maximum number of buffered messages
	QueueBufferSize = 1024
)

// InMemoryQueue implements a bounded in-memory queue.
//
// Enqueue blocks while the buffer is full, so producers are throttled until
// the consumer drains the queue with ReadAllMessages.
type InMemoryQueue[T any] struct {
	ch chan T
	// drain serializes readers so one ReadAllMessages call observes a
	// contiguous run of messages.
	drain sync.Mutex
}

// NewInMemoryQueue creates a new queue.
func NewInMemoryQueue[T any]() *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		ch: make(chan T, QueueBufferSize),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) {
	q.ch <- item
}

// Size returns the number of buffered messages.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue without blocking.
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	q.drain.Lock()
	defer q.drain.Unlock()

	var messages []T
	for {
		select {
		case m := <-q.ch:
			messages = append(messages, m)
		default:
			return messages
		}
	}
}

// ClearQueue drops all pending messages.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.drain.Lock()
	defer q.drain.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
