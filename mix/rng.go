// Package mix - RNG utilities for the evolutionary solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical plans across runs.
//   - Injectability: the solver depends on RandSource, so tests can drive it
//     with scripted sequences.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across solves
//     running in parallel.
package mix

import "math/rand"

// defaultRNGSeed is used when callers leave the seed at 0.
const defaultRNGSeed int64 = 1

// RandSource is the only randomness the evolutionary solver consumes.
// *math/rand.Rand satisfies it.
//
// Intn must return a value in [0, n) for n > 0.
type RandSource interface {
	Intn(n int) int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// randFor picks the injected source or builds a seeded one.
func (o Options) randFor() RandSource {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}
