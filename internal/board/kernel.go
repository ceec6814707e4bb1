package board

// tap is one neighbor offset of a 3x3 stencil and its weight.
type tap struct {
	dx, dy int
	w      float32
}

// mooreTaps lists the eight neighbors in scan order (dy -1..1, dx -1..1).
var mooreTaps = [8]tap{
	{-1, -1, 1}, {0, -1, 1}, {1, -1, 1},
	{-1, 0, 1}, {1, 0, 1},
	{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
}

// energyKernel weights corners 0.5 and edges 1.0. The center weight of 2.0
// belongs to the stencil but never enters the neighbor sum.
var energyKernel = weighted(0.5, 1.0)

// fieldKernel is shared by the gamma and omega convolutions.
var fieldKernel = weighted(0.1, 1.0)

func weighted(corner, edge float32) [8]tap {
	var k [8]tap
	for i, t := range mooreTaps {
		t.w = edge
		if t.dx != 0 && t.dy != 0 {
			t.w = corner
		}
		k[i] = t
	}
	return k
}

// waveSources lists self, up, down, left and right: the cells whose wave may
// move onto a cell during aggregation.
var waveSources = [5][2]int{{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
