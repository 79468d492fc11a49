// Package display holds the boundary between the engine and whatever draws
// it: a non-authoritative mirror of cell snapshots, user intents, screen to
// lattice picking and vitality shading.
package display

import (
	"errors"
	"fmt"
	"slices"

	"vitality-ca/internal/core"
	"vitality-ca/internal/sim"
)

// ErrOutOfSync reports that a mirror no longer matches the engine.
var ErrOutOfSync = errors.New("mirror out of sync")

// Mirror keeps read copies of the cells an engine reports through frames.
// It never feeds anything back into the engine.
type Mirror struct {
	cells map[core.Coord]float64
	tick  uint64
}

var _ sim.Observer = (*Mirror)(nil)

// NewMirror returns an empty mirror.
func NewMirror() *Mirror {
	return &Mirror{cells: make(map[core.Coord]float64)}
}

// Observe applies a frame. Full frames replace the mirrored set.
func (m *Mirror) Observe(fr sim.Frame) {
	if fr.Full {
		clear(m.cells)
	}
	for _, c := range fr.Cells {
		m.cells[c.Pos] = c.Vitality
	}
	m.tick = fr.Tick
}

// Tick returns the tick of the last observed frame.
func (m *Mirror) Tick() uint64 { return m.tick }

// Len returns the number of mirrored cells.
func (m *Mirror) Len() int { return len(m.cells) }

// Vitality returns the mirrored vitality at c.
func (m *Mirror) Vitality(c core.Coord) (float64, bool) {
	v, ok := m.cells[c]
	return v, ok
}

// Cells returns the mirrored cells in row-major order.
func (m *Mirror) Cells() []core.CellState {
	out := make([]core.CellState, 0, len(m.cells))
	for pos, v := range m.cells {
		out = append(out, core.CellState{Pos: pos, Vitality: v})
	}
	slices.SortFunc(out, func(a, b core.CellState) int {
		switch {
		case core.Less(a.Pos, b.Pos):
			return -1
		case core.Less(b.Pos, a.Pos):
			return 1
		}
		return 0
	})
	return out
}

// Population counts living and dead mirrored cells.
func (m *Mirror) Population() (alive, dead int) {
	for _, v := range m.cells {
		if v != 0 {
			alive++
			continue
		}
		dead++
	}
	return alive, dead
}

// Verify compares the mirror against an authoritative snapshot.
func (m *Mirror) Verify(snapshot []core.CellState) error {
	if len(snapshot) != len(m.cells) {
		return fmt.Errorf("%w: mirror holds %d cells, grid holds %d", ErrOutOfSync, len(m.cells), len(snapshot))
	}
	for _, c := range snapshot {
		v, ok := m.cells[c.Pos]
		if !ok {
			return fmt.Errorf("%w: %v missing from mirror", ErrOutOfSync, c.Pos)
		}
		if v != c.Vitality {
			return fmt.Errorf("%w: %v mirrored %g, grid %g", ErrOutOfSync, c.Pos, v, c.Vitality)
		}
	}
	return nil
}
