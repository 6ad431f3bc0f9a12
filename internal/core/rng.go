package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Every animation component takes one explicitly; there is no
// package-level random state anywhere in the core.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Range returns a uniform value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// Angle returns a uniform angle in [-π, π).
func (r *RNG) Angle() float64 {
	return r.Range(-math.Pi, math.Pi)
}

// IntN returns a uniform int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// UnitVec3 returns a direction sampled by normalizing a uniform random
// 3-vector with components in [-1, 1).
func (r *RNG) UnitVec3() Vec3 {
	v := Vec3{
		X: r.Range(-1, 1),
		Y: r.Range(-1, 1),
		Z: r.Range(-1, 1),
	}
	return v.Normalize()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
