package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"mapgen/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	// number holds the current value; bools are 0 or 1.
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
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

const defaultFloatStep = 0.05

func buildTitle(info core.Info) string {
	if info.Name == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s Controls", strings.Title(info.Name))
}

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = hudControlState{control: ctrl, value: "--", top: top, minusRect: minusRect, plusRect: plusRect}
	}
	return states
}

// refresh reads the control's value out of the parameter snapshot.
func (s *hudControlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.number = float64(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.number = parsed
	case core.ParamTypeBool:
		parsed, err := strconv.ParseBool(param.Value)
		if err != nil {
			return
		}
		s.number = 0
		if parsed {
			s.number = 1
		}
	default:
		return
	}
	s.value = formatValue(s.control, s.number)
	s.hasValue = true
}

// nextValue returns the value one step away from current in direction and
// whether it differs from current. Bool controls toggle either way.
func nextValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	switch ctrl.Type {
	case core.ParamTypeBool:
		if current != 0 {
			return 0, true
		}
		return 1, true
	case core.ParamTypeInt:
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		target := clampControl(ctrl, current+float64(direction)*step, math.Round)
		return target, target != current
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = defaultFloatStep
		}
		// Snap to the step grid so repeated clicks do not accumulate error.
		target := math.Round((current+float64(direction)*step)/step) * step
		target = clampControl(ctrl, target, func(v float64) float64 { return v })
		return target, math.Abs(target-current) >= 1e-9
	}
	return current, false
}

func clampControl(ctrl core.ParameterControl, v float64, round func(float64) float64) float64 {
	if ctrl.HasMin && v < round(ctrl.Min) {
		v = round(ctrl.Min)
	}
	if ctrl.HasMax && v > round(ctrl.Max) {
		v = round(ctrl.Max)
	}
	return v
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	switch ctrl.Type {
	case core.ParamTypeInt:
		return strconv.Itoa(int(math.Round(v)))
	case core.ParamTypeBool:
		if v != 0 {
			return "on"
		}
		return "off"
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
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
