// Package mix solves blending problems: given a target batch (volume,
// concentration, tolerance, quantization step) and a list of candidate
// fluids, find how much to draw from each so the blend lands within
// tolerance of the target.
//
// 🚀 Two interchangeable strategies over the same Spec and Result:
//
//   - SolveExact: deterministic, memoized, bisecting depth-first search.
//     Candidates are visited by descending Concentration×Volume; for each one
//     the draw volume is bisected on the step grid and the child outcome
//     (too high / too low / match) decides which half to keep.
//     Returns ErrInfeasible when no quantized combination matches.
//
//   - SolveEvolutionary: population search (truncation selection,
//     single-point crossover, one-gene ±step mutation). Best effort: it
//     never reports infeasibility, it returns the best plan it saw and flags
//     whether that plan is within tolerance.
//
// Solve dispatches on WithAlgorithm, including a fallback mode that runs the
// exact search first and the evolutionary one only when the exact search
// proves infeasible.
//
// ⚙️ Usage:
//
//	spec := mix.NewSpec(
//		mix.Target{Volume: 100, Concentration: 10, Tolerance: 0.1, Step: 1},
//		fluid.NewBase("shot", 100, 20),
//		fluid.NewBase("zero", 100, 0),
//	)
//	res, err := mix.Solve(spec, mix.WithAlgorithm(mix.AlgoExact))
//	for _, line := range mix.Format(res, err) {
//		fmt.Println(line)
//	}
//
// Complexity:
//
//   - SolveExact: depth ≤ n, each frame bisects ≤ log2(volume/step) times;
//     memo entries bounded by the distinct quantized states visited.
//   - SolveEvolutionary: O(G · P · n) with P = 20·n and G ≤ MaxGenerations.
//
// Limitations:
//
//   - A step larger than the tolerance band can make otherwise feasible
//     targets unreachable for SolveExact.
//   - The memo key rounds accumulated concentration and volume to
//     MemoDigits decimals (3 by default); two states closer than that share
//     an outcome.
package mix
