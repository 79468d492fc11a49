package sim

import (
	"slices"

	"vitality-ca/internal/core"
)

// Spawn materializes the neighborhood around c and makes c alive. Spawning
// on a live cell changes nothing. c is snapped to the lattice first. The
// returned states are the entries that were created or changed.
func (e *Engine) Spawn(c core.Coord) []core.CellState {
	touched := e.spawn(c.Align(e.cfg.CellWidth))
	sortStates(touched)
	e.emit(touched, false)
	return touched
}

// Clear materializes the dead neighborhood around c without changing the
// vitality of anything already present.
func (e *Engine) Clear(c core.Coord) []core.CellState {
	c = c.Align(e.cfg.CellWidth)
	touched := e.materialize(c, nil)
	sortStates(touched)
	e.emit(touched, false)
	return touched
}

// Toggle kills c when it is alive and spawns it otherwise.
func (e *Engine) Toggle(c core.Coord) []core.CellState {
	c = c.Align(e.cfg.CellWidth)
	cell, ok := e.grid.Get(c)
	if !ok || !cell.Alive() {
		touched := e.spawn(c)
		sortStates(touched)
		e.emit(touched, false)
		return touched
	}
	if err := e.grid.SetVitality(c, 0); err != nil {
		return nil
	}
	touched := []core.CellState{{Pos: c}}
	e.emit(touched, false)
	return touched
}

func (e *Engine) spawn(c core.Coord) []core.CellState {
	var promoted bool
	touched := e.materialize(c, nil)
	if cell, _ := e.grid.Get(c); !cell.Alive() {
		// The target was materialized above, so this cannot miss.
		_ = e.grid.SetVitality(c, 1)
		promoted = true
	}
	if !promoted {
		return touched
	}
	for i := range touched {
		if touched[i].Pos == c {
			touched[i].Vitality = 1
			return touched
		}
	}
	return append(touched, core.CellState{Pos: c, Vitality: 1})
}

// materialize creates every absent coordinate of c's neighborhood as a dead
// cell and appends the created entries to dst.
func (e *Engine) materialize(c core.Coord, dst []core.CellState) []core.CellState {
	for _, o := range e.offsets {
		n := c.Add(o)
		if cell, inserted := e.grid.GetOrCreateDead(n); inserted {
			dst = append(dst, cell.State())
		}
	}
	return dst
}

func sortStates(states []core.CellState) {
	slices.SortFunc(states, func(a, b core.CellState) int {
		switch {
		case core.Less(a.Pos, b.Pos):
			return -1
		case core.Less(b.Pos, a.Pos):
			return 1
		}
		return 0
	})
}
