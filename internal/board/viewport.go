package board

import (
	"image"

	"connex/internal/core"
)

// View is a rectangular, row-major copy of every attribute. Origin is the
// board-space coordinate of the first cell.
type View struct {
	W, H   int
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

// Index returns the slice index of view-local (x, y).
func (v *View) Index(x, y int) int { return y*v.W + x }

func (v *View) resize(w, h int) {
	n := w * h
	v.W, v.H = w, h
	v.Connex = resized(v.Connex, n)
	v.Stability = resized(v.Stability, n)
	v.Reactivity = resized(v.Reactivity, n)
	v.Energy = resized(v.Energy, n)
	v.Alpha = resized(v.Alpha, n)
	v.Beta = resized(v.Beta, n)
	v.Gamma = resized(v.Gamma, n)
	v.Omega = resized(v.Omega, n)
	v.Delta = resized(v.Delta, n)
}

func resized[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}

// Bounds returns the board-space rectangle the grid covers.
func (b *Board) Bounds() image.Rectangle {
	return image.Rectangle{Min: b.pos, Max: b.pos.Add(image.Pt(b.w, b.h))}
}

// ClampRect shifts r so it lies inside bounds. A rectangle larger than bounds
// keeps its Min at bounds.Min.
func ClampRect(r, bounds image.Rectangle) image.Rectangle {
	r = r.Canon()
	if d := r.Max.X - bounds.Max.X; d > 0 {
		r = r.Sub(image.Pt(d, 0))
	}
	if d := r.Max.Y - bounds.Max.Y; d > 0 {
		r = r.Sub(image.Pt(0, d))
	}
	if d := bounds.Min.X - r.Min.X; d > 0 {
		r = r.Add(image.Pt(d, 0))
	}
	if d := bounds.Min.Y - r.Min.Y; d > 0 {
		r = r.Add(image.Pt(0, d))
	}
	return r
}

// CopyRegion copies the part of r (in board space) that overlaps the grid into
// dst. An empty overlap leaves dst with zero size.
func (b *Board) CopyRegion(r image.Rectangle, dst *View) {
	clip := r.Canon().Intersect(b.Bounds())
	if clip.Empty() {
		dst.resize(0, 0)
		dst.Origin = r.Min
		return
	}
	dst.resize(clip.Dx(), clip.Dy())
	dst.Origin = clip.Min

	local := clip.Sub(b.pos)
	x0, x1 := local.Min.X, local.Max.X
	y0, y1 := local.Min.Y, local.Max.Y
	workers := b.cfg.Workers
	g := b.grids

	copyRows(g.Connex, dst.Connex, x0, x1, y0, y1, workers)
	copyRows(g.Stability, dst.Stability, x0, x1, y0, y1, workers)
	copyRows(g.Reactivity, dst.Reactivity, x0, x1, y0, y1, workers)
	copyRows(g.Energy, dst.Energy, x0, x1, y0, y1, workers)
	copyRows(g.Alpha, dst.Alpha, x0, x1, y0, y1, workers)
	copyRows(g.Beta, dst.Beta, x0, x1, y0, y1, workers)
	copyRows(g.Gamma, dst.Gamma, x0, x1, y0, y1, workers)
	copyRows(g.Omega, dst.Omega, x0, x1, y0, y1, workers)
	copyRows(g.Delta, dst.Delta, x0, x1, y0, y1, workers)
}

func copyRows[T any](g *core.Grid[T], dst []T, x0, x1, y0, y1, workers int) {
	w := x1 - x0
	g.Rows(y0, y1, workers, func(y int, row []T) {
		off := (y - y0) * w
		copy(dst[off:off+w], row[x0:x1])
	})
}
