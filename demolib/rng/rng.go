// Package rng is a small seeded pseudorandom generator (mulberry32).
//
// The stream is fully determined by the seed, so a replay with the same seed
// produces the same frames. Rand is not safe for concurrent use.
package rng

import (
	"math"
	"time"
)

// Rand is a 32-bit mulberry32 generator.
type Rand struct {
	state uint32
	seed  uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// NewFromTime returns a generator seeded from the wall clock.
func NewFromTime() *Rand {
	r := &Rand{}
	r.SeedFromTime()
	return r
}

// Seed discards the current stream and restarts it from seed.
func (r *Rand) Seed(seed uint32) {
	r.seed = seed
	r.state = seed
}

// SeedFromTime reseeds with the current time in milliseconds and returns the seed used.
func (r *Rand) SeedFromTime() uint32 {
	seed := uint32(time.Now().UnixMilli())
	r.Seed(seed)
	return seed
}

// InitialSeed returns the seed the current stream started from.
func (r *Rand) InitialSeed() uint32 { return r.seed }

// Uint32 advances the stream by one mixing step.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float returns a value in [0, 1).
func (r *Rand) Float() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// FloatN returns a value in [0, max).
func (r *Rand) FloatN(max float64) float64 {
	return r.FloatRange(0, max)
}

// FloatRange returns a value in [min, max).
func (r *Rand) FloatRange(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// IntN returns floor(FloatN(max)).
func (r *Rand) IntN(max int) int {
	return r.IntRange(0, max)
}

// IntRange returns floor(FloatRange(min, max)).
func (r *Rand) IntRange(min, max int) int {
	return int(math.Floor(r.FloatRange(float64(min), float64(max))))
}
