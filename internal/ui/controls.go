package ui

import (
	"image"
	"math"
	"slices"
	"strconv"

	"vitality-ca/internal/core"
)

// controlState tracks one HUD row: the control, its last known value and
// where its buttons sit on the panel.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	choice     int
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// setters collects whichever parameter setters the simulation implements.
type setters struct {
	ints    core.IntParameterSetter
	floats  core.FloatParameterSetter
	choices core.ChoiceParameterSetter
}

func newSetters(target any) setters {
	var s setters
	if v, ok := target.(core.IntParameterSetter); ok {
		s.ints = v
	}
	if v, ok := target.(core.FloatParameterSetter); ok {
		s.floats = v
	}
	if v, ok := target.(core.ChoiceParameterSetter); ok {
		s.choices = v
	}
	return s
}

func newControlStates(controls []core.ParameterControl) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refreshControls copies current values from snap into states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
		case core.ParamTypeChoice:
			idx := slices.Index(state.control.Choices, param.Value)
			if idx < 0 {
				continue
			}
			state.choice = idx
			state.value = param.Value
		default:
			continue
		}
		state.hasValue = true
	}
}

func (s setters) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if s.ints == nil {
			return false
		}
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin && direction < 0 && target < int(math.Round(state.control.Min)) {
			return false
		}
		if state.control.HasMax && direction > 0 && target > int(math.Round(state.control.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		if s.floats == nil {
			return false
		}
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
			return false
		}
		if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
			return false
		}
		return true
	case core.ParamTypeBool:
		return s.choices != nil
	case core.ParamTypeChoice:
		return s.choices != nil && len(state.control.Choices) > 1
	}
	return false
}

// adjust applies one button press and reports whether the value changed.
// Choices wrap around; bools flip regardless of direction.
func (s setters) adjust(state *controlState, direction int) bool {
	if !s.canAdjust(state, direction) {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin {
			target = max(target, int(math.Round(state.control.Min)))
		}
		if state.control.HasMax {
			target = min(target, int(math.Round(state.control.Max)))
		}
		if target == state.intValue || !s.ints.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin {
			target = max(target, state.control.Min)
		}
		if state.control.HasMax {
			target = min(target, state.control.Max)
		}
		if math.Abs(target-state.floatValue) < 1e-9 || !s.floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	case core.ParamTypeBool:
		target := !state.boolValue
		if !s.choices.SetChoiceParameter(state.control.Key, strconv.FormatBool(target)) {
			return false
		}
		state.boolValue = target
		state.value = onOff(target)
	case core.ParamTypeChoice:
		n := len(state.control.Choices)
		idx := ((state.choice+direction)%n + n) % n
		if !s.choices.SetChoiceParameter(state.control.Key, state.control.Choices[idx]) {
			return false
		}
		state.choice = idx
		state.value = state.control.Choices[idx]
	}
	return true
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// layoutControls assigns each row its buttons within a panel of width w.
func layoutControls(states []controlState, w int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(w-panelPadding-buttonSize, buttonY, w-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// hit returns the control and direction under panel position (x, y).
func hit(states []controlState, x, y int) (int, int, bool) {
	for i := range states {
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
