// Package arena provides index-stable storage for heterogeneous game objects
// and scoped exclusive access to them.
//
// Values live in slots. Acquiring a handle moves the value out of its slot
// into a Guard; releasing the guard moves it back. While a guard is
// outstanding the slot is empty, so a second acquire of the same handle is an
// invariant violation rather than a wait. The arena relies on single-threaded
// use and provides no locking.
package arena

import (
	"fmt"
	"iter"

	"github.com/cbodonnell/tickwheel/pkg/fault"
)

// Arena is an ordered sequence of optional type-erased slots.
// A slot index is never reused within the arena's lifetime.
type Arena struct {
	slots []any
	live  int
	epoch int
}

func New() *Arena {
	return &Arena{}
}

// Handle references an arena slot holding a T. It carries no ownership.
//
// The zero Handle refers to slot 0, which is whatever was allocated first.
// Only handles returned by Allocate are meaningful.
type Handle[T any] struct {
	index int
}

// Index returns the slot index referenced by h.
func (h Handle[T]) Index() int {
	return h.index
}

func (h Handle[T]) String() string {
	var zero T
	return fmt.Sprintf("%T@%d", zero, h.index)
}

// Allocate stores v in a fresh slot and returns its handle.
func Allocate[T any](a *Arena, v T) Handle[T] {
	index := len(a.slots)
	a.slots = append(a.slots, &v)
	a.live++
	return Handle[T]{index: index}
}

// Acquire moves the value referenced by h into a guard for exclusive mutation.
// Acquiring an empty slot (borrowed, deleted or never allocated) or a slot
// holding another type raises an invariant violation.
func Acquire[T any](a *Arena, h Handle[T]) *Guard[T] {
	if h.index < 0 || h.index >= len(a.slots) {
		fault.Violation("acquire", h.index, "slot was never allocated")
	}
	v := a.slots[h.index]
	if v == nil {
		fault.Violation("acquire", h.index, "slot is empty (borrowed or deleted)")
	}
	value, ok := v.(*T)
	if !ok {
		var zero T
		fault.Violation("acquire", h.index, "slot holds %T, not %T", v, &zero)
	}
	a.slots[h.index] = nil
	a.live--
	return &Guard[T]{
		arena: a,
		index: h.index,
		epoch: a.epoch,
		value: value,
	}
}

// Use acquires h, calls fn with the value and releases it on every exit path.
func Use[T any](a *Arena, h Handle[T], fn func(v *T)) {
	g := Acquire(a, h)
	defer g.Release()
	fn(g.Get())
}

// Exists reports whether the slot referenced by h currently holds a value.
func Exists[T any](a *Arena, h Handle[T]) bool {
	if h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	_, ok := a.slots[h.index].(*T)
	return ok
}

// All visits every occupied slot in index order. Values are *T for the type
// they were allocated with; callers must check the concrete type before use.
func (a *Arena) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < len(a.slots); i++ {
			v := a.slots[i]
			if v == nil {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Each visits every occupied slot holding a T, skipping other types.
func Each[T any](a *Arena) iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i, v := range a.All() {
			value, ok := v.(*T)
			if !ok {
				continue
			}
			if !yield(Handle[T]{index: i}, value) {
				return
			}
		}
	}
}

// Cast downcasts a value obtained from All. A mismatch raises an invariant
// violation; use a type assertion instead when the kind is only a candidate.
func Cast[T any](v any) *T {
	value, ok := v.(*T)
	if !ok {
		var zero T
		fault.Violation("cast", -1, "value is %T, not %T", v, &zero)
	}
	return value
}

// Len returns the number of slots ever allocated.
func (a *Arena) Len() int {
	return len(a.slots)
}

// Live returns the number of occupied slots.
func (a *Arena) Live() int {
	return a.live
}

// Clear empties every slot. Indices are kept so that they are never reused;
// all previously issued handles become invalid and outstanding guards are
// not written back.
func (a *Arena) Clear() {
	clear(a.slots)
	a.live = 0
	a.epoch++
}

func (a *Arena) restore(epoch, index int, v any) {
	if epoch != a.epoch {
		return
	}
	if a.slots[index] != nil {
		fault.Violation("release", index, "slot was refilled while borrowed")
	}
	a.slots[index] = v
	a.live++
}
