// Package sim runs the vitality automaton over a sparse, unbounded lattice.
//
// A tick is three passes over the grid: aggregate every cell's neighborhood
// from pre-tick vitality, apply the transition rule to every cell, then
// materialize dead borders around live cells. The passes never interleave,
// so the outcome does not depend on iteration order.
package sim

import (
	"fmt"

	"vitality-ca/internal/core"
	"vitality-ca/internal/monitoring"
	"vitality-ca/internal/rules"
	pcore "vitality-ca/pkg/core"
)

// Engine owns the authoritative grid and the tick pipeline. It is not safe
// for concurrent use.
type Engine struct {
	cfg     Config
	grid    *core.SparseGrid
	offsets []core.Offset
	rule    rules.Func
	tick    uint64
	rng     *pcore.RNG

	observers    []observerEntry
	nextObserver int
}

var _ core.Sim = (*Engine)(nil)

// New constructs an engine with an empty grid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:  cfg,
		grid: core.NewSparseGrid(),
		rng:  pcore.NewRNG(cfg.Seed),
	}
	if err := e.configure(); err != nil {
		return nil, err
	}
	monitoring.Logf("sim: rule=%s neighborhood=%s include_self=%t border_growth=%t cell_width=%d",
		cfg.Rule, cfg.Neighborhood, cfg.IncludeSelf, cfg.BorderGrowth, cfg.CellWidth)
	return e, nil
}

func (e *Engine) configure() error {
	fn, err := e.cfg.Rule.Func()
	if err != nil {
		return err
	}
	e.rule = fn
	e.offsets = e.cfg.Neighborhood.Offsets(e.cfg.CellWidth)
	return nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "vitality/" + e.cfg.Rule.String() }

// CellWidth returns the lattice spacing in world units.
func (e *Engine) CellWidth() int { return e.cfg.CellWidth }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Tick returns the number of completed ticks since the last reset.
func (e *Engine) Tick() uint64 { return e.tick }

// Len returns the number of materialized cells.
func (e *Engine) Len() int { return e.grid.Len() }

// Cell returns a copy of the cell at c.
func (e *Engine) Cell(c core.Coord) (core.Cell, bool) { return e.grid.Get(c) }

// Snapshot returns every grid entry in row-major order.
func (e *Engine) Snapshot() []core.CellState { return e.grid.Snapshot() }

// SetRule switches the transition variant used by subsequent ticks.
func (e *Engine) SetRule(r rules.Rule) error {
	fn, err := r.Func()
	if err != nil {
		return err
	}
	e.cfg.Rule = r
	e.rule = fn
	return nil
}

// SetNeighborhood switches the offset set used by subsequent ticks and spawns.
func (e *Engine) SetNeighborhood(n core.Neighborhood) error {
	if _, err := n.MarshalText(); err != nil {
		return err
	}
	e.cfg.Neighborhood = n
	e.offsets = n.Offsets(e.cfg.CellWidth)
	return nil
}

// Reset clears the grid and lays out the configured pattern. A zero seed
// reuses the configured one.
func (e *Engine) Reset(seed int64) error {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.grid.Clear()
	e.tick = 0
	e.rng = pcore.NewRNG(seed)
	if e.cfg.Pattern != "" {
		pattern, ok := core.LookupPattern(e.cfg.Pattern)
		if !ok {
			return fmt.Errorf("pattern %q: %w", e.cfg.Pattern, core.ErrInvalidConfiguration)
		}
		params := core.PatternParams{
			Rand:    e.rng.Source(),
			Radius:  e.cfg.SeedRadius,
			Density: e.cfg.SeedDensity,
		}
		w := e.cfg.CellWidth
		for _, o := range pattern(params) {
			e.spawn(core.Coord{X: o.DX * w, Y: o.DY * w})
		}
	}
	e.emit(e.grid.Snapshot(), true)
	return nil
}

// Step advances the simulation by one tick.
func (e *Engine) Step() error {
	coords := e.grid.Coords()
	if err := e.aggregatePass(coords); err != nil {
		return fmt.Errorf("tick %d: %w", e.tick+1, err)
	}
	if err := e.transitionPass(coords); err != nil {
		return fmt.Errorf("tick %d: %w", e.tick+1, err)
	}
	if e.cfg.BorderGrowth {
		e.growthPass(coords)
	}
	e.tick++
	if e.cfg.Verbose {
		st := e.Stats()
		monitoring.Logf("sim: tick %d cells=%d alive=%d dead=%d mean=%.4f",
			st.Tick, st.Cells, st.Alive, st.Dead, st.MeanVitality)
	}
	e.emit(e.grid.Snapshot(), true)
	return nil
}
