package board

// CellState is a decoded copy of every attribute of one cell.
type CellState struct {
	Connex     uint32
	Stability  float32
	Reactivity float32
	Energy     float32
	Alpha      uint64
	Beta       uint64
	Gamma      float32
	Omega      float32
	Delta      uint64
}

// Wave decodes the cell's alpha word.
func (c CellState) Wave() Wave { return DecodeWave(c.Alpha) }

// Cell returns the current state of (x, y).
func (b *Board) Cell(x, y int) (CellState, bool) {
	if !b.inBounds(x, y) {
		return CellState{}, false
	}
	g := b.grids
	idx := y*b.w + x
	return CellState{
		Connex:     g.Connex.Read()[idx],
		Stability:  g.Stability.Read()[idx],
		Reactivity: g.Reactivity.Read()[idx],
		Energy:     g.Energy.Read()[idx],
		Alpha:      g.Alpha.Read()[idx],
		Beta:       g.Beta.Read()[idx],
		Gamma:      g.Gamma.Read()[idx],
		Omega:      g.Omega.Read()[idx],
		Delta:      g.Delta.Read()[idx],
	}, true
}

// SetAttr overwrites one numeric attribute of (x, y), clamped to the
// configured bounds. Connex truncates value. It reports false for an
// out-of-range cell or a packed attribute; use SetWord for those.
func (b *Board) SetAttr(x, y int, attr Attr, value float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.w + x
	g := b.grids
	bounds := b.cfg.Bounds
	switch attr {
	case AttrConnex:
		value = min(max(value, float64(bounds.ConnexMin)), float64(bounds.ConnexMax), MaxConnex)
		g.Connex.Set(idx, uint32(value))
	case AttrEnergy:
		v := max(float32(value), bounds.EnergyMin)
		old := g.Energy.Read()[idx]
		g.Energy.Set(idx, v)
		b.totalEnergy += float64(v - old)
	case AttrStability:
		g.Stability.Set(idx, clampf(float32(value), bounds.StabilityMin, bounds.StabilityMax))
	case AttrReactivity:
		g.Reactivity.Set(idx, clampf(float32(value), bounds.ReactivityMin, bounds.ReactivityMax))
	case AttrGamma, AttrOmega:
		g.floatGrid(attr).Set(idx, float32(value))
	default:
		return false
	}
	b.touch(idx)
	return true
}

// SetWord overwrites a packed attribute with its exact bit pattern.
func (b *Board) SetWord(x, y int, attr Attr, value uint64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	grid := b.grids.wordGrid(attr)
	if grid == nil {
		return false
	}
	idx := y*b.w + x
	grid.Set(idx, value)
	b.touch(idx)
	return true
}

// AdjustAttr adds delta to a numeric attribute of (x, y). Packed attributes
// cannot be adjusted.
func (b *Board) AdjustAttr(x, y int, attr Attr, delta float64) bool {
	cell, ok := b.Cell(x, y)
	if !ok {
		return false
	}
	switch attr {
	case AttrConnex:
		return b.SetAttr(x, y, attr, float64(cell.Connex)+delta)
	case AttrStability:
		return b.SetAttr(x, y, attr, float64(cell.Stability)+delta)
	case AttrReactivity:
		return b.SetAttr(x, y, attr, float64(cell.Reactivity)+delta)
	case AttrEnergy:
		return b.SetAttr(x, y, attr, float64(cell.Energy)+delta)
	case AttrGamma:
		return b.SetAttr(x, y, attr, float64(cell.Gamma)+delta)
	case AttrOmega:
		return b.SetAttr(x, y, attr, float64(cell.Omega)+delta)
	}
	return false
}

// swapLockLevel and swapLockStability mark cells too developed to move.
const (
	swapLockLevel     = 20
	swapLockStability = 0.8
)

func locked(c CellState) bool {
	return c.Connex > swapLockLevel && c.Stability > swapLockStability && c.Delta&BitSwapOverride == 0
}

// CanSwap reports whether two cells may trade places.
func (b *Board) CanSwap(a, c CellState, override bool) bool {
	if override {
		return true
	}
	return !locked(a) && !locked(c)
}

// SwapCells exchanges every attribute of two cells.
func (b *Board) SwapCells(ax, ay, bx, by int, override bool) bool {
	ca, ok := b.Cell(ax, ay)
	if !ok {
		return false
	}
	cb, ok := b.Cell(bx, by)
	if !ok {
		return false
	}
	if !b.CanSwap(ca, cb, override) {
		return false
	}
	b.store(ay*b.w+ax, cb)
	b.store(by*b.w+bx, ca)
	return true
}

func (b *Board) store(idx int, c CellState) {
	g := b.grids
	g.Connex.Set(idx, c.Connex)
	g.Stability.Set(idx, c.Stability)
	g.Reactivity.Set(idx, c.Reactivity)
	g.Energy.Set(idx, c.Energy)
	g.Alpha.Set(idx, c.Alpha)
	g.Beta.Set(idx, c.Beta)
	g.Gamma.Set(idx, c.Gamma)
	g.Omega.Set(idx, c.Omega)
	g.Delta.Set(idx, c.Delta)
	b.touch(idx)
}

func (b *Board) touch(idx int) {
	n := b.grids.Connex.Read()[idx]
	if n > MaxConnex {
		n = MaxConnex
	}
	b.display[idx] = uint8(n)
	b.dirty = true
}
