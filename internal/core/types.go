package core

import (
	"math/rand/v2"
	"sort"
)

// Sim defines the contract the display layer drives.
type Sim interface {
	Name() string
	CellWidth() int
	Reset(seed int64) error
	Step() error
	Snapshot() []CellState
}

// PatternParams carries the inputs a seed pattern may consult.
type PatternParams struct {
	Rand *rand.Rand
	// Radius bounds randomly placed cells, in cells.
	Radius int
	// Density is the chance that a cell within Radius starts alive.
	Density float64
}

// Pattern produces the live cells of an initial configuration as offsets in
// cell units relative to the origin.
type Pattern func(p PatternParams) []Offset

var patterns = map[string]Pattern{}

// RegisterPattern adds a seed pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
