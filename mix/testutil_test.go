// Package mix_test holds fixtures and assertions shared by the mix tests.
package mix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liquify/fluid"
	"github.com/katalvlaran/liquify/mix"
)

const (
	// seedDet is the fixed seed used wherever a test needs reproducibility.
	seedDet = int64(42)

	// tolDefault is the tolerance of most fixtures.
	tolDefault = 0.1
)

// halfAndHalf: 100 ml at 20 mg/ml and 100 ml at 0 mg/ml blended into
// 100 ml at 10 mg/ml. The only grid answer is 50 ml of each.
func halfAndHalf() mix.Spec {
	return mix.NewSpec(
		mix.Target{Volume: 100, Concentration: 10, Tolerance: tolDefault, Step: 1},
		fluid.NewBase("shot", 100, 20),
		fluid.NewBase("zero", 100, 0),
	)
}

// tooWeak: every candidate is below the target concentration.
func tooWeak() mix.Spec {
	return mix.NewSpec(
		mix.Target{Volume: 50, Concentration: 10, Tolerance: tolDefault, Step: 1},
		fluid.NewBase("weak", 100, 5),
		fluid.NewFlavor("berry", 100, 3, "strawberry"),
	)
}

// single: one fluid already at the target concentration.
func single() mix.Spec {
	return mix.NewSpec(
		mix.Target{Volume: 50, Concentration: 10, Tolerance: tolDefault, Step: 1},
		fluid.NewBase("ready", 100, 10),
	)
}

// requireValidPlan asserts 0 < v ≤ volume for every draw and that each
// Index points at the same fluid in spec.
func requireValidPlan(t *testing.T, spec mix.Spec, plan mix.Plan) {
	t.Helper()
	for i, d := range plan {
		require.GreaterOrEqual(t, d.Index, 0, "draw %d index", i)
		require.Less(t, d.Index, len(spec.Fluids), "draw %d index", i)
		require.Equal(t, spec.Fluids[d.Index], d.Fluid, "draw %d fluid", i)
		require.Greater(t, d.Volume, 0.0, "draw %d volume", i)
		require.LessOrEqual(t, d.Volume, d.Fluid.Volume(), "draw %d volume", i)
	}
}

// seqRand replays vals (modulo n) and records every requested bound.
type seqRand struct {
	vals   []int
	i      int
	bounds []int
}

func (s *seqRand) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}
