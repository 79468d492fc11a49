// Package life is a dense, bounded Game of Life board. It evaluates the
// discrete transition rule over every cell of a fixed square so sparse
// engines can be checked against it.
package life

import (
	"vitality-ca/internal/core"
	"vitality-ca/internal/rules"
)

// Board is a (2R+1)×(2R+1) square centered on the origin. Cells outside the
// square are permanently dead.
type Board struct {
	radius int
	side   int
	cur    []float64
	nxt    []float64
}

// New returns an empty board spanning [-radius, radius] on both axes.
func New(radius int) *Board {
	side := 2*radius + 1
	return &Board{radius: radius, side: side, cur: make([]float64, side*side), nxt: make([]float64, side*side)}
}

// Radius returns the half-width of the board in cells.
func (b *Board) Radius() int { return b.radius }

func (b *Board) index(x, y int) (int, bool) {
	if x < -b.radius || x > b.radius || y < -b.radius || y > b.radius {
		return 0, false
	}
	return (y+b.radius)*b.side + (x + b.radius), true
}

// Set marks the cell at (x, y) alive. It reports false when the cell lies
// outside the board.
func (b *Board) Set(x, y int) bool {
	idx, ok := b.index(x, y)
	if ok {
		b.cur[idx] = 1
	}
	return ok
}

// Alive reports whether the cell at (x, y) is alive.
func (b *Board) Alive(x, y int) bool {
	idx, ok := b.index(x, y)
	return ok && b.cur[idx] > 0
}

// Step advances the board by one generation.
func (b *Board) Step() {
	offsets := core.FullNeighborhood.Offsets(1)
	for y := -b.radius; y <= b.radius; y++ {
		for x := -b.radius; x <= b.radius; x++ {
			sum := 0.0
			for _, o := range offsets {
				if o.IsSelf() {
					continue
				}
				if idx, ok := b.index(x+o.DX, y+o.DY); ok {
					sum += b.cur[idx]
				}
			}
			idx, _ := b.index(x, y)
			b.nxt[idx] = rules.ApplyDiscrete(b.cur[idx], sum)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// Live lists the living cells in row-major order, in cell units.
func (b *Board) Live() []core.Coord {
	var out []core.Coord
	for y := -b.radius; y <= b.radius; y++ {
		for x := -b.radius; x <= b.radius; x++ {
			if b.Alive(x, y) {
				out = append(out, core.Coord{X: x, Y: y})
			}
		}
	}
	return out
}
