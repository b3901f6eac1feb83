package rng

import (
	"math/rand"
	"sync"
)

// Source is the randomness contract of the seeder.
type Source interface {
	// Sample returns k distinct indices drawn uniformly from [0, n),
	// in draw order. Callers guarantee 0 <= k <= n.
	Sample(n, k int) []int

	// Uniform returns a uniformly distributed real in [0, upper).
	Uniform(upper float64) float64
}

// Rand is a seeded pseudo-random Source.
// It is safe for concurrent use.
type Rand struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

var _ Source = (*Rand)(nil)

// New creates a new Rand with the specified seed.
func New(seed int64) *Rand {
	return &Rand{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset rewinds the generator to its initial seed.
func (r *Rand) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Sample implements Source using the prefix of a uniform permutation.
func (r *Rand) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	r.mu.Lock()
	perm := r.rand.Perm(n)
	r.mu.Unlock()

	return perm[:k:k]
}

// Uniform implements Source.
func (r *Rand) Uniform(upper float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() * upper
}
