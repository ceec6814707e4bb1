package core

import "strconv"

// ParamType is the value kind of a Parameter.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Parameter is one named value reported by a sim. Value holds its text form.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled list of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is the full set of values a sim reports at one instant.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the first parameter named key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParameterControl marks a parameter as adjustable from the HUD. Step, Min and
// Max are in the parameter's units; Min and Max apply only when their Has flag
// is set.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64

	Min, Max       float64
	HasMin, HasMax bool
}

type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
