// SPDX-License-Identifier: MIT
// Package: liquify/mix
//
// options.go: solver configuration and deterministic defaults.
//
// Design:
//   • Options is the single source of truth for all solver knobs.
//   • Defaults are deterministic; no time-based randomness anywhere.
//   • Option functions apply in order (later overrides earlier). An invalid
//     value is recorded and surfaced as ErrOptionViolation by the solver.
//
// Deterministic defaults:
//   • Algorithm        = AlgoExact
//   • MemoDigits       = 3
//   • Seed             = 0 (→ defaultRNGSeed)
//   • PopulationFactor = 20   (P = 20·n)
//   • StagnationLimit  = 20   generations without strict improvement
//   • MaxGenerations   = 10000

package mix

import (
	"context"
	"fmt"
	"strconv"
)

// Algorithm selects the strategy used by Solve.
type Algorithm int

const (
	// AlgoExact runs SolveExact only.
	AlgoExact Algorithm = iota

	// AlgoEvolutionary runs SolveEvolutionary only.
	AlgoEvolutionary

	// AlgoFallback runs SolveExact and, only when it reports ErrInfeasible,
	// SolveEvolutionary.
	AlgoFallback
)

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoExact:
		return "exact"
	case AlgoEvolutionary:
		return "evolutionary"
	case AlgoFallback:
		return "fallback"
	default:
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAlgorithm maps "exact", "evolutionary" or "fallback" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "exact":
		return AlgoExact, nil
	case "evolutionary":
		return AlgoEvolutionary, nil
	case "fallback":
		return AlgoFallback, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

const (
	defaultMemoDigits       = 3
	defaultPopulationFactor = 20
	defaultStagnationLimit  = 20
	defaultMaxGenerations   = 10000

	// maxMemoDigits keeps round(x·10^d) inside int64 for realistic volumes.
	maxMemoDigits = 9
)

// Option configures a solve via functional arguments.
type Option func(*Options)

// Options holds every solver knob. Build it with DefaultOptions and Option
// functions; the zero value is not meant to be used directly.
type Options struct {
	// Ctx is checked once per search frame (exact) or generation (evolutionary).
	Ctx context.Context

	// Algorithm is the strategy used by Solve.
	Algorithm Algorithm

	// MemoDigits is the number of decimals kept in the exact solver's memo key.
	MemoDigits int

	// Seed feeds the default RNG when Rand is nil; 0 means defaultRNGSeed.
	Seed int64

	// Rand, when non-nil, replaces the seeded RNG (tests inject stubs here).
	Rand RandSource

	// PopulationFactor sets the population size to PopulationFactor·n.
	PopulationFactor int

	// StagnationLimit stops the evolutionary loop after this many
	// generations without strict improvement.
	StagnationLimit int

	// MaxGenerations is a hard cap on evolutionary generations.
	MaxGenerations int

	// OnGeneration is called after each generation with the 1-based
	// generation number and the best fitness seen so far.
	OnGeneration func(gen int, best float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Algorithm:        AlgoExact,
		MemoDigits:       defaultMemoDigits,
		PopulationFactor: defaultPopulationFactor,
		StagnationLimit:  defaultStagnationLimit,
		MaxGenerations:   defaultMaxGenerations,
		OnGeneration:     func(int, float64) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the strategy used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithMemoDigits sets the memo key precision (0..9 decimals).
func WithMemoDigits(d int) Option {
	return func(o *Options) {
		if d < 0 || d > maxMemoDigits {
			o.err = fmt.Errorf("%w: MemoDigits must be in [0,%d] (%d)", ErrOptionViolation, maxMemoDigits, d)
			return
		}
		o.MemoDigits = d
	}
}

// WithSeed sets the seed of the default RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a random source; it takes precedence over WithSeed.
func WithRand(r RandSource) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithPopulationFactor sets P/n for the evolutionary solver (≥ 1).
func WithPopulationFactor(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: PopulationFactor must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.PopulationFactor = k
	}
}

// WithStagnationLimit sets the number of non-improving generations
// tolerated before the evolutionary solver stops (≥ 1).
func WithStagnationLimit(g int) Option {
	return func(o *Options) {
		if g < 1 {
			o.err = fmt.Errorf("%w: StagnationLimit must be ≥ 1 (%d)", ErrOptionViolation, g)
			return
		}
		o.StagnationLimit = g
	}
}

// WithMaxGenerations caps the evolutionary loop (≥ 1).
func WithMaxGenerations(g int) Option {
	return func(o *Options) {
		if g < 1 {
			o.err = fmt.Errorf("%w: MaxGenerations must be ≥ 1 (%d)", ErrOptionViolation, g)
			return
		}
		o.MaxGenerations = g
	}
}

// WithOnGeneration registers a per-generation progress hook.
func WithOnGeneration(fn func(gen int, best float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// resolveOptions applies opts over the defaults and returns the first
// recorded violation, if any.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
