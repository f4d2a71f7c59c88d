package engine

import (
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
)

// Stats is a snapshot of the engine taken at the end of a tick. Snapshots
// are immutable once published and may be read from any goroutine.
type Stats struct {
	RunID        string               `json:"runId"`
	Tick         uint64               `json:"tick"`
	Tasks        []scheduler.TaskInfo `json:"tasks"`
	Slots        int                  `json:"slots"`
	Objects      int                  `json:"objects"`
	Events       uint64               `json:"events"`
	PendingLoads int                  `json:"pendingLoads"`
	DrawCommands int                  `json:"drawCommands"`
	Screen       Screen               `json:"screen"`
}

// Stats returns the snapshot published by the last tick. It is safe to call
// concurrently with Frame.
func (e *Engine) Stats() *Stats {
	return e.stats.Load()
}

func (e *Engine) publishStats() {
	e.stats.Store(&Stats{
		RunID:        e.runID.String(),
		Tick:         e.scheduler.Ticks(),
		Tasks:        e.scheduler.Tasks(),
		Slots:        e.arena.Len(),
		Objects:      e.arena.Live(),
		Events:       e.eventsSeen,
		PendingLoads: e.loader.Pending(),
		DrawCommands: e.draw.Len(),
		Screen:       e.screen,
	})
}
