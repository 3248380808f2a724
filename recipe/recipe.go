// Package recipe loads mix problems from YAML files.
//
// A recipe file names the target batch, optional solver settings and the
// fluids on the shelf:
//
//	target:
//	  volume: 100
//	  concentration: 10
//	  tolerance: 0.1   # default 0.1
//	  step: 1          # default 1
//	solver:
//	  algorithm: exact # exact | evolutionary | fallback
//	  seed: 42
//	fluids:
//	  - name: shot
//	    volume: 100
//	    concentration: 20
//	  - name: berry
//	    volume: 30
//	    taste: strawberry
//
// A fluid with a taste (other than "tasteless") is a flavour unless its
// role says otherwise.
package recipe

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/liquify/fluid"
	"github.com/katalvlaran/liquify/mix"
)

const (
	defaultTolerance = 0.1
	defaultStep      = 1.0
)

// ErrUnknownAlgorithm is returned for an unrecognised solver.algorithm.
var ErrUnknownAlgorithm = errors.New("recipe: unknown algorithm")

// ErrUnknownRole is returned for an unrecognised fluid role.
var ErrUnknownRole = errors.New("recipe: unknown role")

// Recipe is the decoded file.
type Recipe struct {
	Target TargetSpec  `json:"target"`
	Solver SolverSpec  `json:"solver,omitempty"`
	Fluids []FluidSpec `json:"fluids"`
}

// TargetSpec mirrors mix.Target; nil Tolerance/Step take the defaults.
type TargetSpec struct {
	Volume        float64  `json:"volume"`
	Concentration float64  `json:"concentration"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	Step          *float64 `json:"step,omitempty"`
}

// SolverSpec carries optional solver settings; zero values keep the
// mix package defaults.
type SolverSpec struct {
	Algorithm        string `json:"algorithm,omitempty"`
	Seed             int64  `json:"seed,omitempty"`
	MemoDigits       *int   `json:"memoDigits,omitempty"`
	PopulationFactor int    `json:"populationFactor,omitempty"`
	StagnationLimit  int    `json:"stagnationLimit,omitempty"`
	MaxGenerations   int    `json:"maxGenerations,omitempty"`
}

// FluidSpec is one fluid entry.
type FluidSpec struct {
	Name          string  `json:"name"`
	Volume        float64 `json:"volume"`
	Concentration float64 `json:"concentration"`
	Taste         string  `json:"taste,omitempty"`
	Role          string  `json:"role,omitempty"`
}

// Load reads and decodes the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read recipe %s", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load recipe %s", path)
	}
	return r, nil
}

// Parse decodes a YAML (or JSON) recipe.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "decode recipe")
	}
	return &r, nil
}

// MixTarget returns the mix.Target with defaults applied.
func (r *Recipe) MixTarget() mix.Target {
	t := mix.Target{
		Volume:        r.Target.Volume,
		Concentration: r.Target.Concentration,
		Tolerance:     defaultTolerance,
		Step:          defaultStep,
	}
	if r.Target.Tolerance != nil {
		t.Tolerance = *r.Target.Tolerance
	}
	if r.Target.Step != nil {
		t.Step = *r.Target.Step
	}
	return t
}

// MixFluids converts the fluid entries, in file order.
func (r *Recipe) MixFluids() ([]fluid.Fluid, error) {
	out := make([]fluid.Fluid, 0, len(r.Fluids))
	for i, fs := range r.Fluids {
		role, err := fs.role()
		if err != nil {
			return nil, errors.Wrapf(err, "fluid %d (%q)", i, fs.Name)
		}
		if role == fluid.RoleFlavor {
			out = append(out, fluid.NewFlavor(fs.Name, fs.Volume, fs.Concentration, fs.Taste))
		} else {
			out = append(out, fluid.NewBase(fs.Name, fs.Volume, fs.Concentration))
		}
	}
	return out, nil
}

func (fs FluidSpec) role() (fluid.Role, error) {
	if fs.Role != "" {
		role, err := fluid.ParseRole(fs.Role)
		if err != nil {
			return 0, errors.Wrap(ErrUnknownRole, fs.Role)
		}
		return role, nil
	}
	if fs.Taste != "" && fs.Taste != fluid.Tasteless {
		return fluid.RoleFlavor, nil
	}
	return fluid.RoleBase, nil
}

// Spec builds and validates the mix.Spec described by the recipe.
func (r *Recipe) Spec() (mix.Spec, error) {
	fs, err := r.MixFluids()
	if err != nil {
		return mix.Spec{}, err
	}
	spec := mix.NewSpec(r.MixTarget(), fs...)
	if err := spec.Validate(); err != nil {
		return mix.Spec{}, errors.Wrap(err, "invalid recipe")
	}
	return spec, nil
}

// Options translates the solver section into mix options.
func (r *Recipe) Options() ([]mix.Option, error) {
	s := r.Solver
	var opts []mix.Option
	if s.Algorithm != "" {
		algo, err := mix.ParseAlgorithm(s.Algorithm)
		if err != nil {
			return nil, errors.Wrap(ErrUnknownAlgorithm, s.Algorithm)
		}
		opts = append(opts, mix.WithAlgorithm(algo))
	}
	if s.Seed != 0 {
		opts = append(opts, mix.WithSeed(s.Seed))
	}
	if s.MemoDigits != nil {
		opts = append(opts, mix.WithMemoDigits(*s.MemoDigits))
	}
	if s.PopulationFactor != 0 {
		opts = append(opts, mix.WithPopulationFactor(s.PopulationFactor))
	}
	if s.StagnationLimit != 0 {
		opts = append(opts, mix.WithStagnationLimit(s.StagnationLimit))
	}
	if s.MaxGenerations != 0 {
		opts = append(opts, mix.WithMaxGenerations(s.MaxGenerations))
	}
	return opts, nil
}
