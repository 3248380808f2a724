package mix

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/liquify/fluid"
)

// Strategy names the solver that produced a Result.
type Strategy int

const (
	// StrategyExact marks results of SolveExact.
	StrategyExact Strategy = iota

	// StrategyEvolutionary marks results of SolveEvolutionary.
	StrategyEvolutionary
)

// String returns "exact" or "evolutionary".
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyEvolutionary:
		return "evolutionary"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// Draw is one recipe line: take Volume ml of Fluid, the candidate at
// position Index of Spec.Fluids.
type Draw struct {
	Index  int
	Fluid  fluid.Fluid
	Volume float64
}

// Plan is an ordered recipe. Plans returned by a solver are fresh slices
// owned by the caller.
type Plan []Draw

// TotalVolume returns the summed draw volume.
func (p Plan) TotalVolume() float64 {
	var v float64
	for _, d := range p {
		v += d.Volume
	}
	return v
}

// Concentration returns the volume-weighted concentration of the plan,
// or 0 for an empty plan.
func (p Plan) Concentration() float64 {
	var v, c float64
	for _, d := range p {
		v += d.Volume
		c += d.Volume * d.Fluid.Concentration()
	}
	if v <= 0 {
		return 0
	}
	return c / v
}

// Within reports whether the plan's volume and concentration are both
// within t.Tolerance of the target.
func (p Plan) Within(t Target) bool {
	return math.Abs(p.TotalVolume()-t.Volume) <= t.Tolerance &&
		math.Abs(p.Concentration()-t.Concentration) <= t.Tolerance
}

// Deviation is |ΔVolume| + |ΔConcentration| against t.
func (p Plan) Deviation(t Target) float64 {
	return math.Abs(t.Volume-p.TotalVolume()) + math.Abs(t.Concentration-p.Concentration())
}

// InCandidateOrder returns a copy sorted by Index.
func (p Plan) InCandidateOrder() Plan {
	out := make(Plan, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Reversed returns a reversed copy.
func (p Plan) Reversed() Plan {
	out := make(Plan, len(p))
	for i, d := range p {
		out[len(p)-1-i] = d
	}
	return out
}

// Stats reports search effort.
//
//   - Nodes, MemoHits: SolveExact: frames entered, frames answered from the memo.
//   - Generations, BestFitness: SolveEvolutionary.
type Stats struct {
	Nodes       int
	MemoHits    int
	Generations int
	BestFitness float64
}

// Result is the outcome of a solve.
//
// Plan order depends on the strategy: SolveExact appends while unwinding
// the recursion, so the deepest candidate comes first; SolveEvolutionary
// lists candidates in Spec order. Use Plan.InCandidateOrder for display.
//
// WithinTolerance is always true for exact results. For evolutionary
// results it tells a usable mix apart from a best-effort approximation.
type Result struct {
	Plan            Plan
	Strategy        Strategy
	WithinTolerance bool
	Deviation       float64
	Stats           Stats
}
