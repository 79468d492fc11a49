package render

import (
	"image/color"
	"math"

	"vitality-ca/internal/core"
	"vitality-ca/internal/display"
)

// ShadeFunc maps a vitality to a straight-alpha color.
type ShadeFunc func(v float64) color.NRGBA

// fillBackground paints every pixel of buf with bg.
func fillBackground(buf []byte, bg color.Color) {
	r, g, b, a := bg.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

// fillVitalityRGBA rasterizes cells into buf, a w*h RGBA image, compositing
// each cell square over whatever buf already holds. Cells outside the view
// are skipped.
func fillVitalityRGBA(buf []byte, w, h int, cells []core.CellState, view display.Viewport, shade ShadeFunc) {
	if len(buf) < 4*w*h || shade == nil {
		return
	}
	half := float64(view.CellWidth) / 2
	for _, c := range cells {
		if !view.Visible(c.Pos) {
			continue
		}
		col := shade(c.Vitality)
		if col.A == 0 {
			continue
		}
		cx, cy := view.ToScreen(c.Pos)
		x0 := max(int(math.Floor(cx-half)), 0)
		y0 := max(int(math.Floor(cy-half)), 0)
		x1 := min(int(math.Floor(cx+half)), w)
		y1 := min(int(math.Floor(cy+half)), h)
		a := uint32(col.A)
		inv := 255 - a
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				base := (y*w + x) * 4
				buf[base+0] = uint8((uint32(col.R)*a + uint32(buf[base+0])*inv + 127) / 255)
				buf[base+1] = uint8((uint32(col.G)*a + uint32(buf[base+1])*inv + 127) / 255)
				buf[base+2] = uint8((uint32(col.B)*a + uint32(buf[base+2])*inv + 127) / 255)
				buf[base+3] = 255
			}
		}
	}
}
