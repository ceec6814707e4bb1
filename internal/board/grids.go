package board

import "connex/internal/core"

// Attr names one of the nine per-cell attributes.
type Attr uint8

const (
	AttrConnex Attr = iota
	AttrStability
	AttrReactivity
	AttrEnergy
	AttrAlpha
	AttrBeta
	AttrGamma
	AttrOmega
	AttrDelta
	attrCount
)

var attrNames = [attrCount]string{
	"connex", "stability", "reactivity", "energy", "alpha", "beta", "gamma", "omega", "delta",
}

// String returns the attribute's key.
func (a Attr) String() string {
	if a >= attrCount {
		return "unknown"
	}
	return attrNames[a]
}

// ParseAttr resolves a key produced by Attr.String.
func ParseAttr(s string) (Attr, bool) {
	for i, name := range attrNames {
		if name == s {
			return Attr(i), true
		}
	}
	return 0, false
}

// Grids holds the nine attribute grids of a board.
type Grids struct {
	Connex     *core.Grid[uint32]
	Stability  *core.Grid[float32]
	Reactivity *core.Grid[float32]
	Energy     *core.Grid[float32]
	Alpha      *core.Grid[uint64]
	Beta       *core.Grid[uint64]
	Gamma      *core.Grid[float32]
	Omega      *core.Grid[float32]
	Delta      *core.Grid[uint64]
}

// NewGrids allocates every attribute grid at w*h.
func NewGrids(w, h int) *Grids {
	return &Grids{
		Connex:     core.NewGrid[uint32](w, h),
		Stability:  core.NewGrid[float32](w, h),
		Reactivity: core.NewGrid[float32](w, h),
		Energy:     core.NewGrid[float32](w, h),
		Alpha:      core.NewGrid[uint64](w, h),
		Beta:       core.NewGrid[uint64](w, h),
		Gamma:      core.NewGrid[float32](w, h),
		Omega:      core.NewGrid[float32](w, h),
		Delta:      core.NewGrid[uint64](w, h),
	}
}

// floatGrid returns the grid backing a float attribute.
func (g *Grids) floatGrid(a Attr) *core.Grid[float32] {
	switch a {
	case AttrStability:
		return g.Stability
	case AttrReactivity:
		return g.Reactivity
	case AttrEnergy:
		return g.Energy
	case AttrGamma:
		return g.Gamma
	case AttrOmega:
		return g.Omega
	}
	return nil
}

// wordGrid returns the grid backing a packed 64-bit attribute.
func (g *Grids) wordGrid(a Attr) *core.Grid[uint64] {
	switch a {
	case AttrAlpha:
		return g.Alpha
	case AttrBeta:
		return g.Beta
	case AttrDelta:
		return g.Delta
	}
	return nil
}
