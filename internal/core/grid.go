package core

// Grid stores a double-buffered 2D grid of cell values in row-major order.
// Transitions read from the read buffer, write into the write buffer and call
// Swap once every cell has been processed.
type Grid[T any] struct {
	W, H  int
	read  []T
	write []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// produce an empty grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, read: make([]T, w*h), write: make([]T, w*h)}
}

// Read exposes the stable buffer.
func (g *Grid[T]) Read() []T { return g.read }

// Write exposes the buffer the current phase fills.
func (g *Grid[T]) Write() []T { return g.write }

// Len reports the number of cells.
func (g *Grid[T]) Len() int { return len(g.read) }

// Swap exchanges the read and write buffers without copying.
func (g *Grid[T]) Swap() { g.read, g.write = g.write, g.read }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Fill writes v into both buffers.
func (g *Grid[T]) Fill(v T) {
	for i := range g.read {
		g.read[i] = v
		g.write[i] = v
	}
}

// Set writes v at idx into both buffers so single-cell edits survive the next
// swap regardless of which buffer a phase copies through.
func (g *Grid[T]) Set(idx int, v T) {
	g.read[idx] = v
	g.write[idx] = v
}

// Load replaces both buffers with src. It reports false when the length does
// not match the grid.
func (g *Grid[T]) Load(src []T) bool {
	if len(src) != len(g.read) {
		return false
	}
	copy(g.read, src)
	copy(g.write, src)
	return true
}

// Rows hands each row in [y0, y1) to fn as a contiguous read-buffer slice,
// spreading rows across workers. fn must only touch memory owned by row y.
func (g *Grid[T]) Rows(y0, y1, workers int, fn func(y int, row []T)) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > g.H {
		y1 = g.H
	}
	if y1 <= y0 || g.W == 0 {
		return
	}
	ParallelRows(y0, y1, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			base := y * g.W
			fn(y, g.read[base:base+g.W])
		}
	})
}
