package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Field generation takes one explicitly so boards are reproducible per seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int64 returns a non-negative pseudo-random int64, used to derive sub-seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Bit returns a uint64 with one random bit in [0, 64) set.
func (r *RNG) Bit() uint64 {
	return 1 << uint(r.r.IntN(64))
}
