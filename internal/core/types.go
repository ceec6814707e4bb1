package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Empty reports whether the size holds no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Sim defines the minimal contract a front-end needs to drive a board.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
