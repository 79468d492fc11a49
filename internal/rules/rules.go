// Package rules holds the vitality transition functions. Every rule is a pure
// function of a cell's current vitality and its neighbor aggregate.
package rules

import (
	"fmt"

	"vitality-ca/internal/core"
)

// Rule selects a transition variant.
type Rule uint8

const (
	// Discrete is the Game of Life rule over binary vitality.
	Discrete Rule = iota
	// Smoothed relaxes the rule into continuous growth and decay bands.
	Smoothed
)

// Smoothed rule constants. The aggregate is normalized by the size of the
// Moore neighborhood whichever offset set produced it.
const (
	SmoothDivisor    = 8.0
	GrowthLow        = 0.07
	GrowthHigh       = 0.15
	GrowthFactor     = 0.1
	DecayFactor      = 0.3
	discreteLiveness = 1.0
)

var ruleNames = map[Rule]string{
	Discrete: "discrete",
	Smoothed: "smoothed",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// Names lists the recognized rule names.
func Names() []string { return []string{Discrete.String(), Smoothed.String()} }

// Parse resolves a configuration name into a Rule.
func Parse(name string) (Rule, error) {
	switch name {
	case "discrete", "life":
		return Discrete, nil
	case "smoothed", "smooth":
		return Smoothed, nil
	}
	return 0, fmt.Errorf("rule %q: %w", name, core.ErrInvalidConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if _, ok := ruleNames[r]; !ok {
		return nil, fmt.Errorf("rule %d: %w", uint8(r), core.ErrInvalidConfiguration)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Func maps (vitality, aggregate) to the next vitality.
type Func func(vitality, aggregate float64) float64

// Func returns the transition function for r, resolved once per tick.
func (r Rule) Func() (Func, error) {
	switch r {
	case Discrete:
		return ApplyDiscrete, nil
	case Smoothed:
		return ApplySmoothed, nil
	}
	return nil, fmt.Errorf("rule %d: %w", uint8(r), core.ErrInvalidConfiguration)
}

// Apply evaluates r for a single cell. Unknown rules leave vitality untouched.
func (r Rule) Apply(vitality, aggregate float64) float64 {
	fn, err := r.Func()
	if err != nil {
		return vitality
	}
	return fn(vitality, aggregate)
}

// ApplyDiscrete keeps a live cell alive with two or three live neighbors and
// births a dead cell with exactly three.
func ApplyDiscrete(vitality, n float64) float64 {
	alive := vitality != 0
	switch {
	case alive && n > 1 && n < 4:
		return discreteLiveness
	case !alive && n == 3:
		return discreteLiveness
	}
	return 0
}

// ApplySmoothed grows cells in the sparse band, decays them above it and
// otherwise passes the normalized aggregate through.
func ApplySmoothed(_ float64, n float64) float64 {
	ratio := n / SmoothDivisor
	switch Classify(ratio) {
	case BandGrowth:
		return ratio + ratio*GrowthFactor
	case BandDecay:
		return ratio - ratio*DecayFactor
	}
	return ratio
}

// Band names the smoothed-rule branch a ratio falls into.
type Band uint8

const (
	BandPass Band = iota
	BandGrowth
	BandDecay
)

func (b Band) String() string {
	switch b {
	case BandGrowth:
		return "growth"
	case BandDecay:
		return "decay"
	}
	return "pass"
}

// Classify returns the smoothed band for a normalized aggregate. The band
// edges themselves belong to the pass-through branch.
func Classify(ratio float64) Band {
	switch {
	case ratio > GrowthLow && ratio < GrowthHigh:
		return BandGrowth
	case ratio > GrowthHigh:
		return BandDecay
	}
	return BandPass
}
