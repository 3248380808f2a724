package fluid

import (
	"errors"
	"fmt"
)

// ErrInvalidFluid is the parent of every validation error in this package.
// Use errors.Is(err, ErrInvalidFluid) to catch any of them.
var ErrInvalidFluid = errors.New("fluid: invalid fluid")

var (
	// ErrEmptyName indicates a fluid without a name.
	ErrEmptyName = fmt.Errorf("%w: name must be non-empty", ErrInvalidFluid)

	// ErrNonPositiveVolume indicates a volume <= 0 (or NaN/Inf).
	ErrNonPositiveVolume = fmt.Errorf("%w: volume must be positive and finite", ErrInvalidFluid)

	// ErrNegativeConcentration indicates a concentration < 0 (or NaN/Inf).
	ErrNegativeConcentration = fmt.Errorf("%w: concentration must be non-negative and finite", ErrInvalidFluid)
)
