package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"vitality-ca/internal/core"
)

// Stats summarizes the grid after the most recent mutation.
type Stats struct {
	Tick  uint64
	Cells int
	Alive int
	Dead  int

	TotalVitality float64
	// MeanVitality averages over living cells only.
	MeanVitality float64
	MaxVitality  float64
}

// Stats computes population and vitality figures for the current grid.
func (e *Engine) Stats() Stats {
	return Summarize(e.tick, e.grid.Snapshot())
}

// Summarize computes Stats for an arbitrary snapshot.
func Summarize(tick uint64, cells []core.CellState) Stats {
	st := Stats{Tick: tick, Cells: len(cells)}
	vals := make([]float64, 0, len(cells))
	for _, c := range cells {
		if !c.Alive() {
			st.Dead++
			continue
		}
		st.Alive++
		vals = append(vals, c.Vitality)
	}
	if len(vals) == 0 {
		return st
	}
	st.TotalVitality = floats.Sum(vals)
	st.MeanVitality = stat.Mean(vals, nil)
	st.MaxVitality = floats.Max(vals)
	return st
}
