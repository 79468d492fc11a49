package sim

import "vitality-ca/internal/core"

// Frame is a batch of cell snapshots emitted after a mutation.
type Frame struct {
	// Tick is the number of completed ticks when the frame was emitted.
	Tick uint64
	// Cells holds copies of the affected cells in row-major order.
	Cells []core.CellState
	// Full is set when Cells covers every grid entry; observers should drop
	// anything not listed.
	Full bool
}

// Observer receives read-only frames. Observers never own simulation state.
type Observer interface {
	Observe(Frame)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Frame)

// Observe calls f(fr).
func (f ObserverFunc) Observe(fr Frame) { f(fr) }

// Subscribe registers o for future frames and returns a function that
// removes it again.
func (e *Engine) Subscribe(o Observer) func() {
	if o == nil {
		return func() {}
	}
	id := e.nextObserver
	e.nextObserver++
	e.observers = append(e.observers, observerEntry{id: id, o: o})
	return func() {
		for i, entry := range e.observers {
			if entry.id == id {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

type observerEntry struct {
	id int
	o  Observer
}

func (e *Engine) emit(cells []core.CellState, full bool) {
	if len(e.observers) == 0 {
		return
	}
	if !full && len(cells) == 0 {
		return
	}
	for _, entry := range e.observers {
		fr := Frame{Tick: e.tick, Cells: append([]core.CellState(nil), cells...), Full: full}
		entry.o.Observe(fr)
	}
}
