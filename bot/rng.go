package bot

import "math/rand/v2"

//go:generate go tool mockgen -destination=./mocks/random_mock.go -package=mocks . Random

// Random is the source of every probability draw an agent makes.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a deterministic PCG source for seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform draws from [lo, hi).
func uniform(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// chance reports whether a draw lands under p.
func chance(r Random, p float64) bool {
	return r.Float64() < p
}

// coinDir returns +1 or -1 with equal probability.
func coinDir(r Random) int {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}

// pick returns an element chosen uniformly from items.
func pick[T any](r Random, items []T) T {
	return items[r.IntN(len(items))]
}
