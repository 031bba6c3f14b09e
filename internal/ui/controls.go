package ui

import (
	"math"
	"strconv"

	"tilegen/internal/core"
)

// Tunable is the surface the HUD drives: a generator whose parameters can be
// read back and adjusted in place.
type Tunable interface {
	Name() string
	Size() core.Size
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	SetIntParameter(key string, value int) bool
	SetFloatParameter(key string, value float64) bool
}

const defaultFloatStep = 0.05

// stepValue moves current one step in direction and clamps it to the
// control's bounds. ok is false when the clamped value equals current.
func stepValue(ctrl core.ParameterControl, current float64, direction int) (next float64, ok bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	default:
		if step <= 0 {
			step = defaultFloatStep
		}
	}
	next = ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-current) >= 1e-9
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(value))
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
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

// applyStep adjusts ctrl on t and returns the value that was applied.
func applyStep(t Tunable, ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	next, ok := stepValue(ctrl, current, direction)
	if !ok {
		return current, false
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		ok = t.SetIntParameter(ctrl.Key, int(next))
	case core.ParamTypeFloat:
		ok = t.SetFloatParameter(ctrl.Key, next)
	default:
		ok = false
	}
	if !ok {
		return current, false
	}
	return next, true
}
