package mix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liquify/fluid"
	"github.com/katalvlaran/liquify/mix"
)

// TestSpec_Validate covers every InvalidInput class.
func TestSpec_Validate(t *testing.T) {
	okTarget := mix.Target{Volume: 10, Concentration: 3, Tolerance: 0.1, Step: 1}
	okFluid := fluid.NewBase("base", 10, 6)

	tests := []struct {
		name string
		spec mix.Spec
		want error
	}{
		{"ok", mix.NewSpec(okTarget, okFluid), nil},
		{"zero step", mix.NewSpec(mix.Target{Volume: 10, Step: 0}, okFluid), mix.ErrNonPositiveStep},
		{"negative step", mix.NewSpec(mix.Target{Volume: 10, Step: -1}, okFluid), mix.ErrNonPositiveStep},
		{"nan step", mix.NewSpec(mix.Target{Volume: 10, Step: math.NaN()}, okFluid), mix.ErrNonPositiveStep},
		{"negative tolerance", mix.NewSpec(mix.Target{Volume: 10, Tolerance: -0.1, Step: 1}, okFluid), mix.ErrNegativeTolerance},
		{"negative volume", mix.NewSpec(mix.Target{Volume: -1, Step: 1}, okFluid), mix.ErrNegativeTarget},
		{"negative concentration", mix.NewSpec(mix.Target{Volume: 1, Concentration: -2, Step: 1}, okFluid), mix.ErrNegativeTarget},
		{"no fluids", mix.NewSpec(okTarget), mix.ErrNoCandidates},
		{"bad fluid", mix.NewSpec(okTarget, okFluid, fluid.NewBase("bad", -5, 1)), fluid.ErrNonPositiveVolume},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.True(t, errors.Is(err, mix.ErrInvalidInput), "must wrap ErrInvalidInput: %v", err)
		})
	}
}

// TestSpec_ZeroTolerance accepts an exact-only target.
func TestSpec_ZeroTolerance(t *testing.T) {
	spec := mix.NewSpec(mix.Target{Volume: 1, Step: 1}, fluid.NewBase("b", 1, 0))
	assert.NoError(t, spec.Validate())
}

// TestSpec_AddDoesNotAlias checks that Add and NewSpec copy their inputs.
func TestSpec_AddDoesNotAlias(t *testing.T) {
	fs := []fluid.Fluid{fluid.NewBase("a", 1, 0)}
	s1 := mix.NewSpec(mix.Target{Step: 1}, fs...)
	fs[0] = fluid.NewBase("changed", 2, 0)
	assert.Equal(t, "a", s1.Fluids[0].Name())

	s2 := s1.Add(fluid.NewFlavor("mint", 5, 0, "menthol"))
	assert.Len(t, s1.Fluids, 1)
	assert.Len(t, s2.Fluids, 2)
	assert.Equal(t, "mint", s2.Fluids[1].Name())
}

// TestSpec_TastesAndTotalVolume checks the taste set and volume sum.
func TestSpec_TastesAndTotalVolume(t *testing.T) {
	spec := mix.NewSpec(mix.Target{Step: 1},
		fluid.NewBase("shot", 10, 20),
		fluid.NewFlavor("b1", 30, 0, "strawberry"),
		fluid.NewFlavor("m", 5, 0, "menthol"),
		fluid.NewFlavor("b2", 15, 0, "strawberry"),
	)
	assert.Equal(t, []string{"menthol", "strawberry"}, spec.Tastes())
	assert.Equal(t, 60.0, spec.TotalVolume())
	assert.Empty(t, halfAndHalf().Tastes(), "bases carry no taste")
}

// TestPlan_Helpers covers totals, ordering helpers and tolerance checks.
func TestPlan_Helpers(t *testing.T) {
	spec := halfAndHalf()
	plan := mix.Plan{
		{Index: 1, Fluid: spec.Fluids[1], Volume: 50},
		{Index: 0, Fluid: spec.Fluids[0], Volume: 50},
	}
	assert.Equal(t, 100.0, plan.TotalVolume())
	assert.Equal(t, 10.0, plan.Concentration())
	assert.True(t, plan.Within(spec.Target))
	assert.Equal(t, 0.0, plan.Deviation(spec.Target))

	ordered := plan.InCandidateOrder()
	assert.Equal(t, 0, ordered[0].Index)
	assert.Equal(t, 1, plan[0].Index, "InCandidateOrder must not reorder the receiver")
	assert.Equal(t, plan[1], plan.Reversed()[0])

	assert.Equal(t, 0.0, mix.Plan{}.Concentration())
	assert.False(t, mix.Plan{}.Within(spec.Target))
}
