package display

import (
	"fmt"

	"vitality-ca/internal/core"
)

// IntentKind enumerates the user actions the display layer can emit.
type IntentKind uint8

const (
	// IntentSpawn creates a live cell with a dead border.
	IntentSpawn IntentKind = iota
	// IntentClear materializes a dead neighborhood only.
	IntentClear
	// IntentToggle flips the target between alive and dead.
	IntentToggle
)

func (k IntentKind) String() string {
	switch k {
	case IntentSpawn:
		return "spawn"
	case IntentClear:
		return "clear"
	case IntentToggle:
		return "toggle"
	}
	return fmt.Sprintf("IntentKind(%d)", uint8(k))
}

// Intent is a user request at a snapped lattice coordinate.
type Intent struct {
	Kind IntentKind
	At   core.Coord
}

// Target receives intents. *sim.Engine implements it.
type Target interface {
	Spawn(core.Coord) []core.CellState
	Clear(core.Coord) []core.CellState
	Toggle(core.Coord) []core.CellState
}

// Dispatch applies in to t and returns the cells it touched.
func Dispatch(t Target, in Intent) ([]core.CellState, error) {
	switch in.Kind {
	case IntentSpawn:
		return t.Spawn(in.At), nil
	case IntentClear:
		return t.Clear(in.At), nil
	case IntentToggle:
		return t.Toggle(in.At), nil
	}
	return nil, fmt.Errorf("intent %v: %w", in.Kind, core.ErrInvalidConfiguration)
}
