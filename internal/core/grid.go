package core

import (
	"fmt"
	"slices"
)

// SparseGrid stores lattice cells keyed by coordinate. Only touched
// coordinates are present; the grid is otherwise unbounded.
type SparseGrid struct {
	cells map[Coord]*Cell

	// order caches the row-major key order; nil when stale.
	order []Coord
}

// NewSparseGrid allocates an empty grid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[Coord]*Cell)}
}

// Len returns the number of stored cells.
func (g *SparseGrid) Len() int { return len(g.cells) }

// Get returns a copy of the cell at c.
func (g *SparseGrid) Get(c Coord) (Cell, bool) {
	cell, ok := g.cells[c]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// Vitality returns the vitality at c, or zero when c is absent.
func (g *SparseGrid) Vitality(c Coord) float64 {
	if cell, ok := g.cells[c]; ok {
		return cell.Vitality
	}
	return 0
}

// GetOrCreateDead returns the cell at c, inserting a dead placeholder first
// if the coordinate is absent. The second result reports whether an insert
// happened.
func (g *SparseGrid) GetOrCreateDead(c Coord) (Cell, bool) {
	if cell, ok := g.cells[c]; ok {
		return *cell, false
	}
	cell := NewDeadCell(c)
	g.cells[c] = &cell
	g.order = nil
	return cell, true
}

// SetVitality updates the vitality of an existing cell.
func (g *SparseGrid) SetVitality(c Coord, v float64) error {
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("set vitality at %v: %w", c, ErrNotFound)
	}
	cell.Vitality = v
	return nil
}

// SetNeighbors updates the cached neighbor aggregate of an existing cell.
func (g *SparseGrid) SetNeighbors(c Coord, v float64) error {
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("set neighbors at %v: %w", c, ErrNotFound)
	}
	cell.Neighbors = v
	return nil
}

// Remove demotes c to absent. It reports whether a cell was removed.
func (g *SparseGrid) Remove(c Coord) bool {
	if _, ok := g.cells[c]; !ok {
		return false
	}
	delete(g.cells, c)
	g.order = nil
	return true
}

// Clear drops every cell.
func (g *SparseGrid) Clear() {
	clear(g.cells)
	g.order = nil
}

// Coords returns the stored coordinates in row-major order. The returned
// slice must not be modified.
func (g *SparseGrid) Coords() []Coord {
	if g.order == nil {
		order := make([]Coord, 0, len(g.cells))
		for c := range g.cells {
			order = append(order, c)
		}
		slices.SortFunc(order, func(a, b Coord) int {
			switch {
			case Less(a, b):
				return -1
			case Less(b, a):
				return 1
			}
			return 0
		})
		g.order = order
	}
	return g.order
}

// Range calls fn with a copy of every cell in row-major order until fn
// returns false.
func (g *SparseGrid) Range(fn func(Cell) bool) {
	for _, c := range g.Coords() {
		if !fn(*g.cells[c]) {
			return
		}
	}
}

// Snapshot returns the display-facing state of every cell in row-major order.
func (g *SparseGrid) Snapshot() []CellState {
	out := make([]CellState, 0, len(g.cells))
	for _, c := range g.Coords() {
		out = append(out, g.cells[c].State())
	}
	return out
}

// Population counts living and dead cells.
func (g *SparseGrid) Population() (alive, dead int) {
	for _, cell := range g.cells {
		if cell.Alive() {
			alive++
			continue
		}
		dead++
	}
	return alive, dead
}
