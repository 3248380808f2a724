package recipe_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liquify/fluid"
	"github.com/katalvlaran/liquify/mix"
	"github.com/katalvlaran/liquify/recipe"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

// TestLoad_DefaultsAndSolve loads a minimal recipe and solves it with the
// options it carries.
func TestLoad_DefaultsAndSolve(t *testing.T) {
	r, err := recipe.Load(testdata("half.yaml"))
	require.NoError(t, err)

	assert.Equal(t, mix.Target{Volume: 100, Concentration: 10, Tolerance: 0.1, Step: 1}, r.MixTarget())

	spec, err := r.Spec()
	require.NoError(t, err)
	require.Len(t, spec.Fluids, 2)
	assert.Equal(t, fluid.RoleBase, spec.Fluids[0].Role())

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2, "algorithm and memoDigits")

	res, err := mix.Solve(spec, opts...)
	require.NoError(t, err)
	assert.True(t, res.Plan.Within(spec.Target))
}

// TestLoad_RolesAndTastes checks explicit and inferred roles.
func TestLoad_RolesAndTastes(t *testing.T) {
	r, err := recipe.Load(testdata("flavored.yaml"))
	require.NoError(t, err)

	spec, err := r.Spec()
	require.NoError(t, err)
	assert.Equal(t, mix.Target{Volume: 60, Concentration: 3, Tolerance: 0.5, Step: 0.5}, spec.Target)

	roles := make([]fluid.Role, len(spec.Fluids))
	for i, f := range spec.Fluids {
		roles[i] = f.Role()
	}
	assert.Equal(t, []fluid.Role{fluid.RoleBase, fluid.RoleBase, fluid.RoleFlavor, fluid.RoleFlavor}, roles)
	assert.Equal(t, []string{"menthol", "strawberry"}, spec.Tastes())

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3, "algorithm, seed, maxGenerations")
}

// TestOptions_UnknownAlgorithm surfaces the recipe sentinel.
func TestOptions_UnknownAlgorithm(t *testing.T) {
	r, err := recipe.Load(testdata("bad_algorithm.yaml"))
	require.NoError(t, err)
	_, err = r.Options()
	assert.ErrorIs(t, err, recipe.ErrUnknownAlgorithm)
}

// TestParse_Errors covers decode, role and validation failures.
func TestParse_Errors(t *testing.T) {
	_, err := recipe.Parse([]byte("target: [unclosed"))
	assert.Error(t, err)

	_, err = recipe.Load(testdata("missing.yaml"))
	assert.Error(t, err)

	r, err := recipe.Parse([]byte(`
target: {volume: 10, concentration: 1}
fluids:
  - {name: x, volume: 5, concentration: 1, role: solvent}
`))
	require.NoError(t, err)
	_, err = r.Spec()
	assert.ErrorIs(t, err, recipe.ErrUnknownRole)

	r, err = recipe.Parse([]byte(`
target: {volume: 10, concentration: 1, step: 0}
fluids:
  - {name: x, volume: 5, concentration: 1}
`))
	require.NoError(t, err)
	_, err = r.Spec()
	assert.ErrorIs(t, err, mix.ErrNonPositiveStep)

	r, err = recipe.Parse([]byte(`target: {volume: 10, concentration: 1}`))
	require.NoError(t, err)
	_, err = r.Spec()
	assert.ErrorIs(t, err, mix.ErrNoCandidates)
}

// TestParse_JSON accepts JSON, a subset of YAML.
func TestParse_JSON(t *testing.T) {
	r, err := recipe.Parse([]byte(`{"target":{"volume":5,"concentration":0},"fluids":[{"name":"vg","volume":10,"concentration":0}]}`))
	require.NoError(t, err)
	spec, err := r.Spec()
	require.NoError(t, err)
	assert.Equal(t, "vg", spec.Fluids[0].Name())
}
