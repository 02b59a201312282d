// Package random supplies the stochastic decisions of a composition.
//
// Every draw goes through [Source] so a composition can be replayed from its
// seed.
package random

import (
	"math/rand"
	"time"
)

type Source interface {
	// Int returns an integer in the closed range [min, max].
	Int(min, max int) int
	// Float returns a float in [min, max).
	Float(min, max float64) float64
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// Rand is a seeded Source backed by math/rand.
type Rand struct {
	seed int64
	rng  *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewSeed returns a seed derived from the wall clock.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

func (r *Rand) Seed() int64 { return r.seed }

func (r *Rand) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

func (r *Rand) Float(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}

func (r *Rand) Bool(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.rng.Float64() < p
}
