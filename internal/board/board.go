package board

import (
	"image"

	"connex/internal/core"
)

// Board owns the nine attribute grids of one simulated map and advances them
// through the update pipeline.
type Board struct {
	cfg Config

	w, h int
	pos  image.Point

	grids *Grids

	totalEnergy float64
	tick        uint64
	dirty       bool

	display []uint8
}

// New returns a board sized and seeded from cfg.
func New(cfg Config) *Board {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	b := &Board{
		cfg:     cfg,
		w:       w,
		h:       h,
		grids:   NewGrids(w, h),
		display: make([]uint8, w*h),
	}
	b.Reset(cfg.Seed)
	return b
}

// NewEmpty returns a board with zeroed grids, inert waves and no seeding.
func NewEmpty(cfg Config) *Board {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	b := &Board{
		cfg:     cfg,
		w:       w,
		h:       h,
		grids:   NewGrids(w, h),
		display: make([]uint8, w*h),
	}
	b.grids.Alpha.Fill(ZeroAlpha)
	return b
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "connex" }

// Size reports the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Config returns the configuration the board was built from.
func (b *Board) Config() Config { return b.cfg }

// Grids exposes the attribute grids. Callers outside the pipeline must only
// touch them between ticks.
func (b *Board) Grids() *Grids { return b.grids }

// Position returns the board-space origin of the grid.
func (b *Board) Position() image.Point { return b.pos }

// SetPosition moves the board-space origin of the grid.
func (b *Board) SetPosition(p image.Point) { b.pos = p }

// TotalEnergy returns the running energy sum.
func (b *Board) TotalEnergy() float64 { return b.totalEnergy }

// Tick returns how many updates have run.
func (b *Board) Tick() uint64 { return b.tick }

// Dirty reports whether the board changed since ClearDirty.
func (b *Board) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag after a view has synced.
func (b *Board) ClearDirty() { b.dirty = false }

// Cells exposes connex levels as palette indices.
func (b *Board) Cells() []uint8 { return b.display }

// Reset regenerates the board contents using deterministic randomness.
// A zero seed falls back to the configured seed.
func (b *Board) Reset(seed int64) {
	if b.w == 0 || b.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = b.cfg.Seed
	}
	Generate(b.cfg.Gen, core.NewRNG(effective), b.grids)
	b.tick = 0
	b.RecomputeTotalEnergy()
	b.rebuildDisplay()
	b.dirty = true
}

// Step advances the board by one tick.
func (b *Board) Step() { b.Update() }

// Update runs the ten pipeline phases in order.
func (b *Board) Update() {
	if b.w == 0 || b.h == 0 {
		return
	}
	b.spawnGrowth()
	b.updateOmega()
	b.convolveEnergy()
	b.convolveGamma()
	b.convolveOmega()
	b.aggregateWaves()
	b.adjustLevels()
	b.applyDischarge()
	b.forgeDelta()
	b.applyBounds()

	b.tick++
	b.rebuildDisplay()
	b.dirty = true
}

// RecomputeTotalEnergy sums the energy grid from scratch.
func (b *Board) RecomputeTotalEnergy() float64 {
	energy := b.grids.Energy.Read()
	b.totalEnergy = core.ParallelSum(0, b.h, b.cfg.Workers, func(lo, hi int) float64 {
		s := 0.0
		for i := lo * b.w; i < hi*b.w; i++ {
			s += float64(energy[i])
		}
		return s
	})
	return b.totalEnergy
}

func (b *Board) rebuildDisplay() {
	connex := b.grids.Connex.Read()
	for i, n := range connex {
		if n > MaxConnex {
			n = MaxConnex
		}
		b.display[i] = uint8(n)
	}
}

// forEachRow runs fn over row bands in parallel and returns the summed
// per-band energy change.
func (b *Board) forEachRow(fn func(y0, y1 int) float64) float64 {
	return core.ParallelSum(0, b.h, b.cfg.Workers, fn)
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

func init() {
	core.Register("connex", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
