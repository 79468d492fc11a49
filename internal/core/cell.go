package core

// Cell is a single lattice entry owned by a SparseGrid.
type Cell struct {
	Pos Coord
	// Vitality is zero for dead cells; any other value is the living intensity.
	Vitality float64
	// Neighbors caches the aggregate computed by the last tick.
	Neighbors float64
}

// NewDeadCell returns an inert placeholder at pos.
func NewDeadCell(pos Coord) Cell { return Cell{Pos: pos} }

// NewLiveCell returns a fully alive cell at pos.
func NewLiveCell(pos Coord) Cell { return Cell{Pos: pos, Vitality: 1} }

// Alive reports whether the cell carries any vitality.
func (c Cell) Alive() bool { return c.Vitality != 0 }

// State returns the display-facing snapshot of the cell.
func (c Cell) State() CellState { return CellState{Pos: c.Pos, Vitality: c.Vitality} }

// CellState is the read-only {coordinate, vitality} pair handed to the
// display layer.
type CellState struct {
	Pos      Coord
	Vitality float64
}

// Alive reports whether the snapshot carries any vitality.
func (s CellState) Alive() bool { return s.Vitality != 0 }
