package sim

import "vitality-ca/internal/core"

// Aggregate sums the vitality of the neighbors of c that are present in the
// grid. Absent neighbors count as zero and are not created. The self offset
// contributes only when IncludeSelf is set.
func (e *Engine) Aggregate(c core.Coord) float64 {
	return aggregate(e.grid, c, e.offsets, e.cfg.IncludeSelf)
}

func aggregate(g *core.SparseGrid, c core.Coord, offsets []core.Offset, includeSelf bool) float64 {
	sum := 0.0
	for _, o := range offsets {
		if o.IsSelf() && !includeSelf {
			continue
		}
		sum += g.Vitality(c.Add(o))
	}
	return sum
}

// aggregatePass caches every cell's neighbor sum. It only reads vitality, so
// writing the cached sums as it goes cannot affect later cells.
func (e *Engine) aggregatePass(coords []core.Coord) error {
	for _, c := range coords {
		if err := e.grid.SetNeighbors(c, e.Aggregate(c)); err != nil {
			return err
		}
	}
	return nil
}
