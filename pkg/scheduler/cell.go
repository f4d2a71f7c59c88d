package scheduler

// Cell is a single-slot rendezvous filled out-of-band, for example by an
// asset load callback, and emptied by the task that awaits it.
//
// Cells are not synchronized: Put must run on the host loop's goroutine.
type Cell[T any] struct {
	value T
	full  bool
}

func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Put stores v, replacing any value not yet taken.
func (c *Cell[T]) Put(v T) {
	c.value = v
	c.full = true
}

// Full reports whether a value is waiting to be taken.
func (c *Cell[T]) Full() bool {
	return c.full
}

// Poll takes the value if one is present.
func (c *Cell[T]) Poll(_ *Task) (T, bool) {
	var zero T
	if !c.full {
		return zero, false
	}
	v := c.value
	c.value = zero
	c.full = false
	return v, true
}

// Take suspends t until c is filled and returns the value, leaving c empty.
func Take[T any](t *Task, c *Cell[T]) T {
	return Await[T](t, c)
}
