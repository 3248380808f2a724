// Package mix - unified dispatcher for the mix solvers.
//
// Solve validates options and the Spec once, then routes by
// Options.Algorithm:
//
//   - AlgoExact        → SolveExact; may return ErrInfeasible.
//   - AlgoEvolutionary → SolveEvolutionary; never returns ErrInfeasible.
//   - AlgoFallback     → SolveExact, then SolveEvolutionary only when the exact
//     search proved infeasible. Result.Strategy and Result.WithinTolerance tell
//     the caller which kind of answer it received.
package mix

import "errors"

// Solve runs the strategy selected with WithAlgorithm (AlgoExact by default).
//
// Errors:
//   - ErrOptionViolation for invalid options;
//   - ErrInvalidInput (and its children) for an invalid Spec;
//   - ErrUnsupportedAlgorithm for an unknown Algorithm;
//   - ErrInfeasible from AlgoExact when no mix exists at this step;
//   - ctx.Err() when the context is cancelled.
func Solve(spec Spec, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = spec.Validate(); err != nil {
		return Result{}, err
	}

	switch o.Algorithm {
	case AlgoExact:
		return solveExact(spec, o)

	case AlgoEvolutionary:
		return solveEvolutionary(spec, o)

	case AlgoFallback:
		res, err := solveExact(spec, o)
		if !errors.Is(err, ErrInfeasible) {
			return res, err
		}
		fallback, err := solveEvolutionary(spec, o)
		if err != nil {
			return Result{}, err
		}
		// keep the exact search effort visible next to the evolutionary one
		fallback.Stats.Nodes = res.Stats.Nodes
		fallback.Stats.MemoHits = res.Stats.MemoHits
		return fallback, nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
