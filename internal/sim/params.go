package sim

import (
	"strconv"
	"time"

	"vitality-ca/internal/core"
	"vitality-ca/internal/rules"
)

// Parameters reports the active configuration for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				choiceParam("rule", "Transition rule", e.cfg.Rule.String()),
				choiceParam("neighborhood", "Neighborhood", e.cfg.Neighborhood.String()),
				boolParam("include_self", "Include self", e.cfg.IncludeSelf),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				boolParam("border_growth", "Border growth", e.cfg.BorderGrowth),
				floatParam("growth_threshold", "Growth threshold", e.cfg.GrowthThreshold),
			},
		},
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("cell_width", "Cell width", e.cfg.CellWidth),
				intParam("tick_ms", "Tick period (ms)", int(e.cfg.TickPeriod/time.Millisecond)),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable controls.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule", Type: core.ParamTypeChoice, Choices: rules.Names()},
		{Key: "neighborhood", Label: "Neighborhood", Type: core.ParamTypeChoice,
			Choices: []string{core.FullNeighborhood.String(), core.SmallStar.String()}},
		{Key: "include_self", Label: "Include self", Type: core.ParamTypeBool},
		{Key: "border_growth", Label: "Border growth", Type: core.ParamTypeBool},
		{Key: "growth_threshold", Label: "Growth threshold", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "tick_ms", Label: "Tick ms", Type: core.ParamTypeInt,
			Step: 8, Min: 1, Max: 1000, HasMin: true, HasMax: true},
	}
}

// SetChoiceParameter updates a named option. Bool parameters accept
// strconv.ParseBool spellings.
func (e *Engine) SetChoiceParameter(key, value string) bool {
	switch key {
	case "rule":
		r, err := rules.Parse(value)
		if err != nil {
			return false
		}
		return e.SetRule(r) == nil
	case "neighborhood":
		n, err := core.ParseNeighborhood(value)
		if err != nil {
			return false
		}
		return e.SetNeighborhood(n) == nil
	case "include_self", "border_growth":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		if key == "include_self" {
			e.cfg.IncludeSelf = b
		} else {
			e.cfg.BorderGrowth = b
		}
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable, clamping to its bounds.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != "growth_threshold" {
		return false
	}
	e.cfg.GrowthThreshold = min(max(value, 0), 1)
	return true
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != "tick_ms" {
		return false
	}
	e.cfg.TickPeriod = time.Duration(min(max(value, 1), 1000)) * time.Millisecond
	return true
}

func choiceParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeChoice, Value: value}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
