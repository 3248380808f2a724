package fluid

import (
	"fmt"
	"math"
	"strconv"
)

// Role tells whether a fluid is a base or a flavouring.
type Role int

const (
	// RoleBase is an unflavoured base or nicotine shot.
	RoleBase Role = iota

	// RoleFlavor is a flavouring concentrate.
	RoleFlavor
)

// Tasteless is the taste tag carried by every base.
const Tasteless = "tasteless"

// String returns "base" or "flavor".
func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RoleFlavor:
		return "flavor"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseRole maps "base" / "flavor" (and "flavour") to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "base":
		return RoleBase, nil
	case "flavor", "flavour":
		return RoleFlavor, nil
	default:
		return 0, fmt.Errorf("fluid: unknown role %q", s)
	}
}

// Fluid is one liquid a mix may draw from. The zero value is not valid;
// build fluids with NewBase or NewFlavor.
type Fluid struct {
	name          string
	volume        float64
	concentration float64
	taste         string
	role          Role
}

// NewBase returns a tasteless base fluid.
func NewBase(name string, volume, concentration float64) Fluid {
	return Fluid{
		name:          name,
		volume:        volume,
		concentration: concentration,
		taste:         Tasteless,
		role:          RoleBase,
	}
}

// NewFlavor returns a flavouring fluid. An empty taste is stored as Tasteless.
func NewFlavor(name string, volume, concentration float64, taste string) Fluid {
	if taste == "" {
		taste = Tasteless
	}
	return Fluid{
		name:          name,
		volume:        volume,
		concentration: concentration,
		taste:         taste,
		role:          RoleFlavor,
	}
}

// Name returns the display name.
func (f Fluid) Name() string { return f.name }

// Volume returns the available volume in ml.
func (f Fluid) Volume() float64 { return f.volume }

// Concentration returns the concentration in mg/ml.
func (f Fluid) Concentration() float64 { return f.concentration }

// Taste returns the taste tag.
func (f Fluid) Taste() string { return f.taste }

// Role returns the role fixed at construction.
func (f Fluid) Role() Role { return f.role }

// Potency is Concentration*Volume, the total active content of the fluid.
func (f Fluid) Potency() float64 { return f.concentration * f.volume }

// Validate checks that the fluid can take part in a mix.
func (f Fluid) Validate() error {
	if f.name == "" {
		return ErrEmptyName
	}
	if !(f.volume > 0) || math.IsInf(f.volume, 0) {
		return fmt.Errorf("%w (%q: %v)", ErrNonPositiveVolume, f.name, f.volume)
	}
	if !(f.concentration >= 0) || math.IsInf(f.concentration, 0) {
		return fmt.Errorf("%w (%q: %v)", ErrNegativeConcentration, f.name, f.concentration)
	}
	return nil
}

// String renders "name;<volume>ml;<concentration>(mg/ml);taste".
func (f Fluid) String() string {
	return f.name + ";" +
		formatAmount(f.volume) + "ml;" +
		formatAmount(f.concentration) + "(mg/ml);" +
		f.taste
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
