package display

import (
	"image/color"
	"math"

	"vitality-ca/internal/rules"
)

// Alpha levels for alive and inert cells.
const (
	AliveAlpha     = 0.999
	InvisibleAlpha = 0.03
)

// Shade returns the color of a cell with vitality v under rule r. Dead cells
// stay faintly visible so the materialized grid can be seen.
func Shade(v float64, r rules.Rule) color.NRGBA {
	if v == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: alpha(InvisibleAlpha)}
	}
	if r == rules.Discrete {
		return color.NRGBA{R: 255, G: 255, B: 255, A: alpha(AliveAlpha)}
	}
	level := clamp01(math.Abs(v))
	a := max(level, InvisibleAlpha)
	// Fade from white toward red as vitality rises.
	gb := uint8(math.Round(255 * (1 - level)))
	return color.NRGBA{R: 255, G: gb, B: gb, A: alpha(a)}
}

func alpha(a float64) uint8 { return uint8(math.Round(clamp01(a) * 255)) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
