package sim

import (
	"fmt"

	"vitality-ca/internal/core"
)

// transitionPass rewrites every cell's vitality from its cached aggregate.
func (e *Engine) transitionPass(coords []core.Coord) error {
	for _, c := range coords {
		cell, ok := e.grid.Get(c)
		if !ok {
			return fmt.Errorf("transition at %v: %w", c, core.ErrNotFound)
		}
		if err := e.grid.SetVitality(c, e.rule(cell.Vitality, cell.Neighbors)); err != nil {
			return err
		}
	}
	return nil
}

// growthPass gives every sufficiently vital cell a border of dead
// cells so the next tick can see births next to it. Cells created here are
// dead and were not part of this tick.
func (e *Engine) growthPass(coords []core.Coord) int {
	created := 0
	for _, c := range coords {
		cell, ok := e.grid.Get(c)
		if !ok || !cell.Alive() || cell.Vitality < e.cfg.GrowthThreshold {
			continue
		}
		for _, o := range e.offsets {
			if _, inserted := e.grid.GetOrCreateDead(c.Add(o)); inserted {
				created++
			}
		}
	}
	return created
}
