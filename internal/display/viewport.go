package display

import "vitality-ca/internal/core"

// Viewport maps between screen pixels and lattice coordinates. The lattice
// origin sits at the screen center shifted by the pan offset, and lattice Y
// grows upward while screen Y grows downward.
type Viewport struct {
	Width, Height float64
	CellWidth     int
	PanX, PanY    float64
}

// NewViewport returns a viewport centered on the lattice origin.
func NewViewport(width, height float64, cellWidth int) Viewport {
	if cellWidth <= 0 {
		cellWidth = core.DefaultCellWidth
	}
	return Viewport{Width: width, Height: height, CellWidth: cellWidth}
}

// ToLattice snaps a screen position to the nearest lattice coordinate.
func (v Viewport) ToLattice(px, py float64) core.Coord {
	x := px - v.Width/2 + v.PanX
	y := v.Height/2 - py + v.PanY
	return core.Snap(x, y, v.CellWidth)
}

// ToScreen returns the screen position of the center of c.
func (v Viewport) ToScreen(c core.Coord) (float64, float64) {
	x := float64(c.X) - v.PanX + v.Width/2
	y := v.Height/2 - (float64(c.Y) - v.PanY)
	return x, y
}

// Visible reports whether any part of c's square lies on screen.
func (v Viewport) Visible(c core.Coord) bool {
	x, y := v.ToScreen(c)
	half := float64(v.CellWidth) / 2
	return x+half > 0 && x-half < v.Width && y+half > 0 && y-half < v.Height
}

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX -= dx
	v.PanY += dy
}
