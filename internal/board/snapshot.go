package board

import (
	"fmt"
	"image"
)

// Snapshot is a self-contained copy of a board's state, suitable for
// persistence.
type Snapshot struct {
	Width  int
	Height int
	Tick   uint64
	Origin image.Point

	Connex     []uint32
	Stability  []float32
	Reactivity []float32
	Energy     []float32
	Alpha      []uint64
	Beta       []uint64
	Gamma      []float32
	Omega      []float32
	Delta      []uint64
}

// Snapshot copies the read buffers of every grid.
func (b *Board) Snapshot() Snapshot {
	g := b.grids
	return Snapshot{
		Width:      b.w,
		Height:     b.h,
		Tick:       b.tick,
		Origin:     b.pos,
		Connex:     append([]uint32(nil), g.Connex.Read()...),
		Stability:  append([]float32(nil), g.Stability.Read()...),
		Reactivity: append([]float32(nil), g.Reactivity.Read()...),
		Energy:     append([]float32(nil), g.Energy.Read()...),
		Alpha:      append([]uint64(nil), g.Alpha.Read()...),
		Beta:       append([]uint64(nil), g.Beta.Read()...),
		Gamma:      append([]float32(nil), g.Gamma.Read()...),
		Omega:      append([]float32(nil), g.Omega.Read()...),
		Delta:      append([]uint64(nil), g.Delta.Read()...),
	}
}

// Restore replaces the board contents with s. The board is resized when the
// snapshot dimensions differ.
func (b *Board) Restore(s Snapshot) error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("board: invalid snapshot size %dx%d", s.Width, s.Height)
	}
	w, h := s.Width, s.Height
	if w == 0 || h == 0 {
		w, h = 0, 0
	}
	n := w * h
	lens := []int{
		len(s.Connex), len(s.Stability), len(s.Reactivity), len(s.Energy),
		len(s.Alpha), len(s.Beta), len(s.Gamma), len(s.Omega), len(s.Delta),
	}
	for i, l := range lens {
		if l != n {
			return fmt.Errorf("board: snapshot %s has %d cells, want %d", Attr(i), l, n)
		}
	}

	if w != b.w || h != b.h {
		b.w, b.h = w, h
		b.cfg.Width, b.cfg.Height = w, h
		b.grids = NewGrids(w, h)
		b.display = make([]uint8, n)
	}
	g := b.grids
	g.Connex.Load(s.Connex)
	g.Stability.Load(s.Stability)
	g.Reactivity.Load(s.Reactivity)
	g.Energy.Load(s.Energy)
	g.Alpha.Load(s.Alpha)
	g.Beta.Load(s.Beta)
	g.Gamma.Load(s.Gamma)
	g.Omega.Load(s.Omega)
	g.Delta.Load(s.Delta)

	b.tick = s.Tick
	b.pos = s.Origin
	b.RecomputeTotalEnergy()
	b.rebuildDisplay()
	b.dirty = true
	return nil
}
