package core

import (
	"fmt"
	"math"
)

// DefaultCellWidth is the lattice spacing in world units.
const DefaultCellWidth = 20

// Coord identifies a lattice cell. Components are world units and always a
// multiple of the cell width in use.
type Coord struct {
	X, Y int
}

// Offset is a displacement between two lattice coordinates.
type Offset struct {
	DX, DY int
}

// Add returns the coordinate displaced by o.
func (c Coord) Add(o Offset) Coord { return Coord{X: c.X + o.DX, Y: c.Y + o.DY} }

// Aligned reports whether c lies on the lattice for the given width.
func (c Coord) Aligned(width int) bool {
	if width <= 0 {
		return false
	}
	return c.X%width == 0 && c.Y%width == 0
}

// Align snaps c to the nearest lattice point for the given width.
func (c Coord) Align(width int) Coord {
	return Snap(float64(c.X), float64(c.Y), width)
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Snap rounds a world position to the nearest multiple of width.
func Snap(x, y float64, width int) Coord {
	if width <= 0 {
		width = DefaultCellWidth
	}
	w := float64(width)
	return Coord{
		X: int(math.Round(x/w)) * width,
		Y: int(math.Round(y/w)) * width,
	}
}

// Less orders coordinates row-major (Y first, then X).
func Less(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Neighborhood selects which neighbor offsets a cell consults.
type Neighborhood uint8

const (
	// FullNeighborhood is the 8-connected Moore neighborhood plus self.
	FullNeighborhood Neighborhood = iota
	// SmallStar is the 4-connected N/E/S/W neighborhood plus self.
	SmallStar
)

var neighborhoodNames = map[Neighborhood]string{
	FullNeighborhood: "full_neighborhood",
	SmallStar:        "small_star",
}

func (n Neighborhood) String() string {
	if name, ok := neighborhoodNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Neighborhood(%d)", uint8(n))
}

// ParseNeighborhood resolves a configuration name into a Neighborhood.
func ParseNeighborhood(name string) (Neighborhood, error) {
	switch name {
	case "full_neighborhood", "full", "moore":
		return FullNeighborhood, nil
	case "small_star", "star", "von_neumann":
		return SmallStar, nil
	}
	return 0, fmt.Errorf("neighborhood %q: %w", name, ErrInvalidConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (n Neighborhood) MarshalText() ([]byte, error) {
	if _, ok := neighborhoodNames[n]; !ok {
		return nil, fmt.Errorf("neighborhood %d: %w", uint8(n), ErrInvalidConfiguration)
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Neighborhood) UnmarshalText(b []byte) error {
	parsed, err := ParseNeighborhood(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Offsets returns the offset set scaled by width. The self offset (0,0) is
// always the last element.
func (n Neighborhood) Offsets(width int) []Offset {
	if width <= 0 {
		width = DefaultCellWidth
	}
	var unit [][2]int
	switch n {
	case SmallStar:
		unit = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {0, 0}}
	default:
		unit = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, 0}}
	}
	offs := make([]Offset, len(unit))
	for i, u := range unit {
		offs[i] = Offset{DX: u[0] * width, DY: u[1] * width}
	}
	return offs
}

// IsSelf reports whether o is the zero offset.
func (o Offset) IsSelf() bool { return o.DX == 0 && o.DY == 0 }
