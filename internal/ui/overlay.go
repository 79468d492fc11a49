//go:build ebiten

package ui

import (
	"image/color"

	"vitality-ca/internal/core"
	"vitality-ca/internal/display"
	"vitality-ca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws lattice guides, the cursor cell and population figures on
// top of the lattice view.
type Overlay struct {
	cellWidth int
	showGrid  bool
	showStats bool
	showHelp  bool

	cursor    core.Coord
	hasCursor bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(cellWidth int) *Overlay {
	o := &Overlay{cellWidth: cellWidth, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetCursor records the lattice cell under the pointer.
func (o *Overlay) SetCursor(c core.Coord) {
	o.cursor = c
	o.hasCursor = true
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image, view display.Viewport, st sim.Stats) {
	if o.showGrid {
		o.drawGrid(screen, view)
	}
	if o.hasCursor && view.Visible(o.cursor) {
		o.drawCursor(screen, view)
	}
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	y := 16
	if o.showStats {
		for _, line := range statsLines(st) {
			text.Draw(screen, line, face, 8, y, fg)
			y += 14
		}
	}
	if o.showHelp {
		for _, line := range helpLines {
			text.Draw(screen, line, face, 8, y, fg)
			y += 14
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, view display.Viewport) {
	w := float64(o.cellWidth)
	if w < 4 {
		return
	}
	line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	topLeft := view.ToLattice(0, 0)
	bottomRight := view.ToLattice(view.Width, view.Height)
	for x := topLeft.X; x <= bottomRight.X+o.cellWidth; x += o.cellWidth {
		sx, _ := view.ToScreen(core.Coord{X: x})
		o.fillRect(screen, sx-w/2, 0, 1, view.Height, line)
	}
	for y := bottomRight.Y; y <= topLeft.Y+o.cellWidth; y += o.cellWidth {
		_, sy := view.ToScreen(core.Coord{Y: y})
		o.fillRect(screen, 0, sy-w/2, view.Width, 1, line)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image, view display.Viewport) {
	w := float64(o.cellWidth)
	x, y := view.ToScreen(o.cursor)
	edge := color.RGBA{R: 90, G: 160, B: 255, A: 200}
	o.fillRect(screen, x-w/2, y-w/2, w, 1, edge)
	o.fillRect(screen, x-w/2, y+w/2-1, w, 1, edge)
	o.fillRect(screen, x-w/2, y-w/2, 1, w, edge)
	o.fillRect(screen, x+w/2-1, y-w/2, 1, w, edge)
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
