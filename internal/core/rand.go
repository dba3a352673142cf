package core

import "math/rand"

// RandomSource supplies uniform random integers to the engine and can
// be reseeded from an external entropy source (the platform samples the
// clock after user interaction, standing in for the free-running
// hardware timer the original read).
type RandomSource interface {
	// Uniform returns a random integer in [lo, hi], both inclusive.
	Uniform(lo, hi int) int
	Reseed(seed int64)
}

// Rand is the math/rand backed RandomSource.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a seeded random source.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a random integer in [lo, hi].
func (r *Rand) Uniform(lo, hi int) int {
	return lo + r.rng.Intn(hi-lo+1)
}

// Reseed replaces the generator state with a fresh seed.
func (r *Rand) Reseed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}
