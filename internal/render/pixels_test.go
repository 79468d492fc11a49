package render

import (
	"image/color"
	"testing"

	"vitality-ca/internal/core"
	"vitality-ca/internal/display"
)

func pixel(buf []byte, w, x, y int) [4]byte {
	base := (y*w + x) * 4
	return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
}

func TestFillVitalityRGBA(t *testing.T) {
	const w, h = 40, 40
	buf := make([]byte, w*h*4)
	fillBackground(buf, color.Black)
	view := display.NewViewport(w, h, 10)

	cells := []core.CellState{
		{Pos: core.Coord{}, Vitality: 1},
		{Pos: core.Coord{X: 10, Y: 10}, Vitality: 0.5},
		{Pos: core.Coord{X: 500}, Vitality: 1},
	}
	shade := func(v float64) color.NRGBA {
		return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(v * 255)}
	}
	fillVitalityRGBA(buf, w, h, cells, view, shade)

	if got := pixel(buf, w, 20, 20); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("center pixel = %v, want opaque white", got)
	}
	if got := pixel(buf, w, 15, 24); got[0] != 255 {
		t.Fatalf("square corner = %v, want white", got)
	}
	if got := pixel(buf, w, 5, 5); got != [4]byte{0, 0, 0, 255} {
		t.Fatalf("background pixel = %v, want black", got)
	}
	// (10,10) sits up and to the right of the origin on screen.
	if got := pixel(buf, w, 30, 10); got[0] != 127 {
		t.Fatalf("half-vitality pixel = %v, want 127", got)
	}
}

func TestFillVitalityRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 8)
	fillVitalityRGBA(buf, 4, 4, []core.CellState{{Vitality: 1}}, display.NewViewport(4, 4, 2), func(float64) color.NRGBA {
		return color.NRGBA{A: 255}
	})
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("short buffer was written")
		}
	}
}
