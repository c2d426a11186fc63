// Package rng provides a seedable random source for the walk models.
package rng

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
// It is owned by the caller and threaded through every step.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// NormFloat64 returns a standard normal value.
func (r *RNG) NormFloat64() float64 {
	return r.r.NormFloat64()
}
