package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(q *Queue, c *Cursor) []Event {
	var got []Event
	for {
		e, ok, _ := q.Next(c)
		if !ok {
			return got
		}
		got = append(got, e)
	}
}

func TestQueueIndependentCursors(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown(KeySpace))
	q.Push(KeyUp(KeySpace))

	var fast, slow Cursor
	assert.Equal(t, []Event{KeyDown(KeySpace), KeyUp(KeySpace)}, drain(q, &fast))

	e, ok, done := q.Next(&slow)
	assert.True(t, ok)
	assert.False(t, done)
	assert.Equal(t, KeyDown(KeySpace), e)

	q.Push(KeyDown(KeyEscape))
	assert.Equal(t, []Event{KeyDown(KeyEscape)}, drain(q, &fast))
	assert.Equal(t, []Event{KeyUp(KeySpace), KeyDown(KeyEscape)}, drain(q, &slow))
	assert.Equal(t, 3, fast.Consumed())
	assert.Equal(t, 3, slow.Consumed())
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown(KeyEnter))
	q.Close()
	q.Push(KeyDown(KeySpace))

	var c Cursor
	e, ok, done := q.Next(&c)
	assert.True(t, ok)
	assert.False(t, done)
	assert.Equal(t, KeyDown(KeyEnter), e)

	_, ok, done = q.Next(&c)
	assert.False(t, ok)
	assert.True(t, done)
	assert.Equal(t, 1, q.Len())
}

func TestQueueReset(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown(KeySpace))
	q.Push(KeyUp(KeySpace))
	q.Close()

	var c Cursor
	drain(q, &c)

	q.Reset()
	assert.False(t, q.Closed())
	assert.Equal(t, 0, q.Len())

	q.Push(KeyDown(KeyR))
	assert.Equal(t, []Event{KeyDown(KeyR)}, drain(q, &c))
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{event: KeyDown(KeySpace), want: "KeyDown(Space)"},
		{event: KeyUp(KeyEscape), want: "KeyUp(Escape)"},
		{event: KeyDown(KeyArrowDown), want: "KeyDown(ArrowDown)"},
		{event: KeyUp(KeyArrowUp), want: "KeyUp(ArrowUp)"},
		{event: MouseDown(MouseButtonLeft, 1, 2), want: "MouseDown(0, 1, 2)"},
		{event: Event{Kind: KindKeyDown, Key: Key(99)}, want: "KeyDown(Key(99))"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.String())
		})
	}
}
