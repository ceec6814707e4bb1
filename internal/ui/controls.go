package ui

import (
	"image"
	"math"
	"strconv"

	"connex/internal/core"
)

const (
	defaultFloatStep = 0.05
	unknownValue     = "--"
)

// control is one adjustable parameter row in the HUD.
type control struct {
	def   core.ParameterControl
	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newControls(defs []core.ParameterControl) []control {
	out := make([]control, len(defs))
	for i, s := range defs {
		out[i] = control{def: s}
	}
	return out
}

// refresh reads the control's current value from snap.
func (c *control) refresh(snap core.ParameterSnapshot) {
	c.known = false
	p, ok := snap.Lookup(c.def.Key)
	if !ok || p.Type != c.def.Type {
		return
	}
	var err error
	switch c.def.Type {
	case core.ParamTypeInt:
		var n int
		n, err = strconv.Atoi(p.Value)
		c.value = float64(n)
	case core.ParamTypeFloat:
		c.value, err = strconv.ParseFloat(p.Value, 64)
	default:
		return
	}
	c.known = err == nil
}

func (c *control) step() float64 {
	s := c.def.Step
	if c.def.Type == core.ParamTypeInt {
		return max(math.Round(s), 1)
	}
	if s <= 0 {
		return defaultFloatStep
	}
	return s
}

// next returns the value one step in dir, clamped to the control's range, and
// whether it differs from the current value.
func (c *control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return 0, false
	}
	v := c.value + float64(dir)*c.step()
	if c.def.HasMin {
		v = math.Max(v, c.def.Min)
	}
	if c.def.HasMax {
		v = math.Min(v, c.def.Max)
	}
	return v, math.Abs(v-c.value) > 1e-9
}

// text formats the current value for display.
func (c *control) text() string {
	if !c.known {
		return unknownValue
	}
	if c.def.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.value))
	}
	return strconv.FormatFloat(c.value, 'f', precisionFor(c.step()), 64)
}

func precisionFor(step float64) int {
	switch {
	case step < 0.001:
		return 4
	case step < 0.01:
		return 3
	case step < 0.1:
		return 2
	default:
		return 1
	}
}

// setters routes adjustments to whichever setter interfaces the sim implements.
type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

func settersFor(sim any) setters {
	var s setters
	s.ints, _ = sim.(core.IntParameterSetter)
	s.floats, _ = sim.(core.FloatParameterSetter)
	return s
}

func (s setters) canSet(t core.ParamType) bool {
	switch t {
	case core.ParamTypeInt:
		return s.ints != nil
	case core.ParamTypeFloat:
		return s.floats != nil
	}
	return false
}

// canAdjust reports whether c can move one step in dir.
func (s setters) canAdjust(c *control, dir int) bool {
	_, ok := c.next(dir)
	return ok && s.canSet(c.def.Type)
}

// adjust moves c one step in dir and reports whether the sim accepted it.
func (s setters) adjust(c *control, dir int) bool {
	v, ok := c.next(dir)
	if !ok || !s.canSet(c.def.Type) {
		return false
	}
	switch c.def.Type {
	case core.ParamTypeInt:
		n := int(math.Round(v))
		if !s.ints.SetIntParameter(c.def.Key, n) {
			return false
		}
		c.value = float64(n)
	case core.ParamTypeFloat:
		if !s.floats.SetFloatParameter(c.def.Key, v) {
			return false
		}
		c.value = v
	}
	return true
}

// layoutControls positions the rows and their -/+ buttons in a panel of the
// given width.
func layoutControls(cs []control, width int) {
	for i := range cs {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		cs[i].top = top
		cs[i].plus = plus
		cs[i].minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
}

// hit returns the control and direction under (x, y) in panel coordinates.
func hit(cs []control, x, y int) (int, int, bool) {
	p := image.Pt(x, y)
	for i := range cs {
		switch {
		case p.In(cs[i].minus):
			return i, -1, true
		case p.In(cs[i].plus):
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
	controlsTop    = panelPadding + headerBaseline + 14

	statusGap        = 20
	statusLineHeight = 16
)
