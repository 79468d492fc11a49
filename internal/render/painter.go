//go:build ebiten

package render

import (
	"image/color"

	"vitality-ca/internal/core"
	"vitality-ca/internal/display"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterizes cell snapshots into a screen-sized image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	bg   color.Color
}

// NewGridPainter allocates a painter for a w*h pixel view.
func NewGridPainter(w, h int, bg color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), bg: bg}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit rasterizes the provided cells and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.CellState, view display.Viewport, shade ShadeFunc) {
	fillBackground(gp.buf, gp.bg)
	fillVitalityRGBA(gp.buf, gp.w, gp.h, cells, view, shade)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
