// Package liquify plans e-liquid mixes: given the fluids on the shelf and a
// target batch, it tells you how many millilitres of each to pour.
//
// What is in the box?
//
//	fluid/       immutable Fluid records (bases and flavours)
//	mix/         the solvers, the Solve dispatcher and the step formatter
//	recipe/      YAML recipe files mapped onto mix.Spec and mix.Option
//	metrics/     Prometheus collectors for solve outcomes and effort
//	cmd/liquify/ the `liquify solve` and `liquify inspect` commands
//	examples/    runnable scenarios
//
// Two strategies share one Spec:
//
//   - mix.SolveExact bisects each fluid's draw on the step grid, memoising
//     sub-problems. Exact or ErrInfeasible.
//   - mix.SolveEvolutionary evolves draw vectors and always returns its best
//     candidate, flagged when it misses the tolerance.
//
// Quick example:
//
//	spec := mix.NewSpec(
//		mix.Target{Volume: 100, Concentration: 10, Tolerance: 0.1, Step: 1},
//		fluid.NewBase("shot", 100, 20),
//		fluid.NewBase("zero", 100, 0),
//	)
//	res, err := mix.Solve(spec, mix.WithAlgorithm(mix.AlgoFallback))
//	for _, line := range mix.Format(res, err) {
//		fmt.Println(line) // Add 50 ml of zero. / Add 50 ml of shot.
//	}
//
//	go install github.com/katalvlaran/liquify/cmd/liquify@latest
package liquify
