// Package patterns registers the seed layouts available to Engine.Reset.
// Offsets are in cell units with Y pointing up.
package patterns

import "vitality-ca/internal/core"

func cells(pts ...[2]int) []core.Offset {
	out := make([]core.Offset, len(pts))
	for i, p := range pts {
		out[i] = core.Offset{DX: p[0], DY: p[1]}
	}
	return out
}

// Glider travels one cell down and right every four ticks.
func Glider(core.PatternParams) []core.Offset {
	return cells([2]int{0, 1}, [2]int{1, 0}, [2]int{-1, -1}, [2]int{0, -1}, [2]int{1, -1})
}

// Blinker is a period-two horizontal/vertical oscillator.
func Blinker(core.PatternParams) []core.Offset {
	return cells([2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0})
}

// Block is a still life.
func Block(core.PatternParams) []core.Offset {
	return cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
}

// RPentomino is a methuselah that settles after 1103 generations.
func RPentomino(core.PatternParams) []core.Offset {
	return cells([2]int{0, 1}, [2]int{1, 1}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, -1})
}

// Random scatters live cells over the square of the given radius.
func Random(p core.PatternParams) []core.Offset {
	if p.Rand == nil || p.Radius < 0 || p.Density <= 0 {
		return nil
	}
	var out []core.Offset
	for y := p.Radius; y >= -p.Radius; y-- {
		for x := -p.Radius; x <= p.Radius; x++ {
			if p.Rand.Float64() < p.Density {
				out = append(out, core.Offset{DX: x, DY: y})
			}
		}
	}
	return out
}

func init() {
	core.RegisterPattern("glider", Glider)
	core.RegisterPattern("blinker", Blinker)
	core.RegisterPattern("block", Block)
	core.RegisterPattern("rpentomino", RPentomino)
	core.RegisterPattern("random", Random)
}
