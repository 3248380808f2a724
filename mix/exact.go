package mix

import (
	"context"
	"math"

	"github.com/katalvlaran/liquify/fluid"
)

// outcome is the control signal of the exact search. It tells the parent
// frame which way to move, not merely whether a match exists.
type outcome int

const (
	tooLow  outcome = -1
	match   outcome = 0
	tooHigh outcome = 1
)

// memoKey is a search state with accumulated concentration and volume
// rounded to MemoDigits decimals.
type memoKey struct {
	index int
	conc  int64
	vol   int64
}

// exactSearch holds the read-only inputs of one SolveExact call.
type exactSearch struct {
	ctx    context.Context
	target Target
	fluids []fluid.Fluid // in visiting order
	origin []int         // origin[i] = index of fluids[i] in Spec.Fluids
	scale  float64       // 10^MemoDigits
	stats  Stats
	err    error
}

// SolveExact searches the step grid for a mix within tolerance.
//
// Algorithm:
//  1. Visit candidates by descending Concentration×Volume.
//  2. A state (i, conc, vol) is terminal when i == n or vol ≥ target volume;
//     it is classified match / too high / too low.
//  3. Otherwise bisect k ∈ [1, ⌊min(remaining+step, volume_i)/step⌋] steps of
//     candidate i, recursing on (i+1, conc', vol+k·step):
//     - match    → record the draw and unwind;
//     - too high → less of a strong fluid, more of a weak one;
//     - too low  → the opposite;
//     - a fluid already at the target concentration is steered by volume.
//  4. When the interval empties, report the candidate's own side of the target.
//  5. Every state outcome is memoized on its rounded key.
//
// Returns a Result whose Plan lists the deepest candidate first, or
// ErrInfeasible. Validation errors wrap ErrInvalidInput; option errors wrap
// ErrOptionViolation; a cancelled context returns ctx.Err().
//
// The first match found wins; no attempt is made to optimize further.
func SolveExact(spec Spec, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = spec.Validate(); err != nil {
		return Result{}, err
	}
	return solveExact(spec, o)
}

func solveExact(spec Spec, o Options) (Result, error) {
	order := spec.byPotency()
	s := &exactSearch{
		ctx:    o.Ctx,
		target: spec.Target,
		fluids: make([]fluid.Fluid, len(order)),
		origin: order,
		scale:  math.Pow10(o.MemoDigits),
	}
	for i, idx := range order {
		s.fluids[i] = spec.Fluids[idx]
	}

	var plan Plan
	memo := make(map[memoKey]outcome)
	ret := s.calculate(0, 0, 0, &plan, memo)
	if s.err != nil {
		return Result{}, s.err
	}
	if ret != match {
		return Result{Strategy: StrategyExact, Stats: s.stats}, ErrInfeasible
	}
	if plan == nil {
		plan = Plan{}
	}

	return Result{
		Plan:            plan,
		Strategy:        StrategyExact,
		WithinTolerance: true,
		Deviation:       plan.Deviation(spec.Target),
		Stats:           s.stats,
	}, nil
}

func (s *exactSearch) key(index int, conc, vol float64) memoKey {
	return memoKey{
		index: index,
		conc:  int64(math.Round(conc * s.scale)),
		vol:   int64(math.Round(vol * s.scale)),
	}
}

// classify labels a terminal state.
func (s *exactSearch) classify(conc, vol float64) outcome {
	t := s.target
	if math.Abs(conc-t.Concentration) <= t.Tolerance && math.Abs(vol-t.Volume) <= t.Tolerance {
		return match
	}
	if conc > t.Concentration {
		return tooHigh
	}
	return tooLow
}

// side reports where a fluid's own concentration sits relative to the target.
func (s *exactSearch) side(f fluid.Fluid) outcome {
	if f.Concentration() > s.target.Concentration {
		return tooHigh
	}
	return tooLow
}

// calculate explores state (index, conc, vol). On match it appends the
// draws of the successful path to plan, deepest first.
func (s *exactSearch) calculate(index int, conc, vol float64, plan *Plan, memo map[memoKey]outcome) outcome {
	s.stats.Nodes++
	if s.err == nil {
		s.err = s.ctx.Err()
	}
	if s.err != nil {
		return tooLow
	}

	key := s.key(index, conc, vol)
	if ret, ok := memo[key]; ok {
		s.stats.MemoHits++
		return ret
	}

	t := s.target
	if index >= len(s.fluids) || vol >= t.Volume {
		ret := s.classify(conc, vol)
		memo[key] = ret
		return ret
	}

	f := s.fluids[index]
	lo, hi := 1, stepsWithin(math.Min(t.Volume-vol+t.Step, f.Volume()), t.Step)
	if hi < lo {
		// not even one step of this fluid is available
		ret := s.calculate(index+1, conc, vol, plan, memo)
		memo[key] = ret
		return ret
	}

	fc := f.Concentration()
	neutral := math.Abs(fc-t.Concentration) <= t.Tolerance
	for lo <= hi {
		k := lo + (hi-lo)/2
		v := stepVolume(k, t.Step, f.Volume())
		nextVol := vol + v
		nextConc := (conc*vol + fc*v) / nextVol

		ret := s.calculate(index+1, nextConc, nextVol, plan, memo)
		if s.err != nil {
			return tooLow
		}
		switch {
		case ret == match:
			*plan = append(*plan, Draw{Index: s.origin[index], Fluid: f, Volume: v})
			memo[key] = match
			return match
		case neutral:
			if nextVol < t.Volume {
				lo = k + 1
			} else {
				hi = k - 1
			}
		case ret == tooHigh:
			if fc > t.Concentration {
				hi = k - 1
			} else {
				lo = k + 1
			}
		default:
			if fc > t.Concentration {
				lo = k + 1
			} else {
				hi = k - 1
			}
		}
	}

	ret := s.side(f)
	memo[key] = ret
	return ret
}
