package mix

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/liquify/fluid"
)

// Target is the batch to produce.
//
//   - Volume:        total volume in ml (≥ 0).
//   - Concentration: concentration of the blend in mg/ml (≥ 0).
//   - Tolerance:     allowed absolute deviation for both volume and concentration (≥ 0).
//   - Step:          smallest volume increment a solver may draw (> 0).
type Target struct {
	Volume        float64
	Concentration float64
	Tolerance     float64
	Step          float64
}

// Spec is the problem statement handed to a solver: a Target plus the
// candidate fluids in caller order. Solvers only read it.
type Spec struct {
	Target Target
	Fluids []fluid.Fluid
}

// NewSpec builds a Spec; the fluids slice is copied.
func NewSpec(target Target, fluids ...fluid.Fluid) Spec {
	fs := make([]fluid.Fluid, len(fluids))
	copy(fs, fluids)
	return Spec{Target: target, Fluids: fs}
}

// Add returns a copy of s with f appended to the candidates.
func (s Spec) Add(f fluid.Fluid) Spec {
	fs := make([]fluid.Fluid, len(s.Fluids), len(s.Fluids)+1)
	copy(fs, s.Fluids)
	return Spec{Target: s.Target, Fluids: append(fs, f)}
}

// Validate rejects specs no solver can work with. Every error wraps
// ErrInvalidInput; fluid errors additionally wrap fluid.ErrInvalidFluid.
func (s Spec) Validate() error {
	t := s.Target
	if !(t.Step > 0) || math.IsInf(t.Step, 0) {
		return fmt.Errorf("%w (step=%v)", ErrNonPositiveStep, t.Step)
	}
	if !(t.Tolerance >= 0) || math.IsInf(t.Tolerance, 0) {
		return fmt.Errorf("%w (tolerance=%v)", ErrNegativeTolerance, t.Tolerance)
	}
	if !(t.Volume >= 0) || math.IsInf(t.Volume, 0) ||
		!(t.Concentration >= 0) || math.IsInf(t.Concentration, 0) {
		return fmt.Errorf("%w (volume=%v, concentration=%v)", ErrNegativeTarget, t.Volume, t.Concentration)
	}
	if len(s.Fluids) == 0 {
		return ErrNoCandidates
	}
	for i, f := range s.Fluids {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: fluid %d: %w", ErrInvalidInput, i, err)
		}
	}
	return nil
}

// Tastes returns the sorted, distinct taste tags of the flavour fluids.
func (s Spec) Tastes() []string {
	seen := make(map[string]struct{}, len(s.Fluids))
	out := make([]string, 0, len(s.Fluids))
	for _, f := range s.Fluids {
		if f.Role() != fluid.RoleFlavor {
			continue
		}
		if _, ok := seen[f.Taste()]; ok {
			continue
		}
		seen[f.Taste()] = struct{}{}
		out = append(out, f.Taste())
	}
	sort.Strings(out)
	return out
}

// TotalVolume is the sum of the candidates' available volumes.
func (s Spec) TotalVolume() float64 {
	var sum float64
	for _, f := range s.Fluids {
		sum += f.Volume()
	}
	return sum
}

// byPotency returns candidate indices ordered by descending
// Concentration×Volume; ties keep caller order.
func (s Spec) byPotency() []int {
	order := make([]int, len(s.Fluids))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.Fluids[order[a]].Potency() > s.Fluids[order[b]].Potency()
	})
	return order
}
