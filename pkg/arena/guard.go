package arena

import "github.com/cbodonnell/tickwheel/pkg/fault"

// Guard is a temporary exclusive borrow of an arena value.
//
// The value is out of the arena while the guard is held. Release writes it
// back to its slot; Delete drops it instead, leaving the slot permanently
// empty. Callers should defer Release right after Acquire.
type Guard[T any] struct {
	arena    *Arena
	index    int
	epoch    int
	value    *T
	deleted  bool
	released bool
}

// Get returns the borrowed value. The pointer must not be kept after the
// guard is released.
func (g *Guard[T]) Get() *T {
	return g.value
}

// Handle returns the handle of the borrowed slot.
func (g *Guard[T]) Handle() Handle[T] {
	return Handle[T]{index: g.index}
}

// Delete marks the slot for permanent removal: the value is not written back
// on Release. Deleting through a guard that was already released is an
// invariant violation since the value is back in the arena.
func (g *Guard[T]) Delete() {
	if g.released && !g.deleted {
		fault.Violation("delete", g.index, "guard was already released")
	}
	g.deleted = true
}

// Release ends the borrow. It is safe to call more than once.
func (g *Guard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	if !g.deleted {
		g.arena.restore(g.epoch, g.index, g.value)
	}
	g.value = nil
}
