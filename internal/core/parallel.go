package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the worker count used when a caller passes zero.
func DefaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}

// Bands splits [y0, y1) into at most workers contiguous row bands.
func Bands(y0, y1, workers int) [][2]int {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers > rows {
		workers = rows
	}
	per := (rows + workers - 1) / workers
	bands := make([][2]int, 0, workers)
	for lo := y0; lo < y1; lo += per {
		hi := lo + per
		if hi > y1 {
			hi = y1
		}
		bands = append(bands, [2]int{lo, hi})
	}
	return bands
}

// ParallelRows runs fn over row bands covering [y0, y1) and returns once
// every band has finished. Bands never overlap.
func ParallelRows(y0, y1, workers int, fn func(lo, hi int)) {
	bands := Bands(y0, y1, workers)
	switch len(bands) {
	case 0:
		return
	case 1:
		fn(bands[0][0], bands[0][1])
		return
	}
	var g errgroup.Group
	g.SetLimit(len(bands))
	for _, b := range bands {
		lo, hi := b[0], b[1]
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelSum runs fn over row bands and returns the sum of the per-band
// results. Band partials are reduced in band order so the result does not
// depend on scheduling.
func ParallelSum(y0, y1, workers int, fn func(lo, hi int) float64) float64 {
	bands := Bands(y0, y1, workers)
	if len(bands) == 0 {
		return 0
	}
	partial := make([]float64, len(bands))
	var g errgroup.Group
	g.SetLimit(len(bands))
	for i, b := range bands {
		i, lo, hi := i, b[0], b[1]
		g.Go(func() error {
			partial[i] = fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	total := 0.0
	for _, v := range partial {
		total += v
	}
	return total
}
