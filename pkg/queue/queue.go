package queue

// Queue is a FIFO of pending messages that is safe to fill from any goroutine.
type Queue[T any] interface {
	Enqueue(item T)
	Size() int
	ReadAllMessages() []T
	ClearQueue()
}
