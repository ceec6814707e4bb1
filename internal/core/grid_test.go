package core

import (
	"slices"
	"sync/atomic"
	"testing"
)

func TestGridSwapExposesWrittenValues(t *testing.T) {
	g := NewGrid[float32](4, 3)
	readCap := cap(g.Read())
	writeCap := cap(g.Write())

	w := g.Write()
	for i := range w {
		w[i] = float32(i) * 0.5
	}
	want := append([]float32(nil), w...)
	writePtr := &w[0]

	g.Swap()

	if !slices.Equal(g.Read(), want) {
		t.Fatalf("read after swap = %v, want %v", g.Read(), want)
	}
	if &g.Read()[0] != writePtr {
		t.Fatal("swap must exchange buffers without copying")
	}
	if cap(g.Read()) != writeCap || cap(g.Write()) != readCap {
		t.Fatalf("swap changed capacities: read %d write %d", cap(g.Read()), cap(g.Write()))
	}
}

func TestGridEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		g := NewGrid[uint64](dims[0], dims[1])
		if g.Len() != 0 || g.W != 0 || g.H != 0 {
			t.Fatalf("NewGrid(%d,%d) should be empty, got %dx%d len %d", dims[0], dims[1], g.W, g.H, g.Len())
		}
		g.Swap()
		g.Rows(0, 10, 4, func(int, []uint64) { t.Fatal("empty grid must not visit rows") })
	}
}

func TestGridRowsVisitsEachRowOnce(t *testing.T) {
	g := NewGrid[uint32](5, 7)
	for i := range g.Write() {
		g.Write()[i] = uint32(i)
	}
	g.Swap()

	var visits [7]atomic.Int32
	g.Rows(1, 6, 3, func(y int, row []uint32) {
		visits[y].Add(1)
		if len(row) != 5 || row[0] != uint32(y*5) {
			t.Errorf("row %d = %v", y, row)
		}
	})
	for y := range visits {
		want := int32(0)
		if y >= 1 && y < 6 {
			want = 1
		}
		if got := visits[y].Load(); got != want {
			t.Fatalf("row %d visited %d times, want %d", y, got, want)
		}
	}
}

func TestParallelSumMatchesSerial(t *testing.T) {
	vals := make([]float64, 97)
	serial := 0.0
	for i := range vals {
		vals[i] = float64(i%13) * 0.25
		serial += vals[i]
	}
	got := ParallelSum(0, len(vals), 6, func(lo, hi int) float64 {
		s := 0.0
		for i := lo; i < hi; i++ {
			s += vals[i]
		}
		return s
	})
	if got != serial {
		t.Fatalf("ParallelSum = %f, want %f", got, serial)
	}
}

func TestBandsCoverRange(t *testing.T) {
	bands := Bands(3, 20, 4)
	next := 3
	for _, b := range bands {
		if b[0] != next || b[1] <= b[0] {
			t.Fatalf("bad band %v after %d", b, next)
		}
		next = b[1]
	}
	if next != 20 {
		t.Fatalf("bands end at %d, want 20", next)
	}
	if Bands(5, 5, 4) != nil {
		t.Fatal("empty range should yield no bands")
	}
}
