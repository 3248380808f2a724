// SPDX-License-Identifier: MIT
// Package: liquify/mix
//
// errors.go: sentinel errors for the mix package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Input validation errors all wrap ErrInvalidInput.
//   • ErrInfeasible is a regular result of SolveExact, not a fault.
//   • Search-internal outcomes (too high / too low) never escape as errors.

package mix

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every Spec validation error.
var ErrInvalidInput = errors.New("mix: invalid input")

var (
	// ErrNonPositiveStep indicates Target.Step <= 0 (or NaN/Inf).
	ErrNonPositiveStep = fmt.Errorf("%w: quantization step must be positive", ErrInvalidInput)

	// ErrNegativeTolerance indicates Target.Tolerance < 0 (or NaN/Inf).
	ErrNegativeTolerance = fmt.Errorf("%w: tolerance must be non-negative", ErrInvalidInput)

	// ErrNegativeTarget indicates a negative (or NaN/Inf) target volume or concentration.
	ErrNegativeTarget = fmt.Errorf("%w: target volume and concentration must be non-negative", ErrInvalidInput)

	// ErrNoCandidates indicates a Spec without fluids.
	ErrNoCandidates = fmt.Errorf("%w: at least one fluid is required", ErrInvalidInput)
)

// ErrInfeasible is returned by SolveExact when no combination on the step
// grid lands within tolerance of the target.
var ErrInfeasible = errors.New("mix: no mix within tolerance at this step")

// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
var ErrUnsupportedAlgorithm = errors.New("mix: unsupported algorithm")

// ErrOptionViolation is returned when an Option received a meaningless value
// (e.g. WithMemoDigits(-1)). The option records it; the solver surfaces it.
var ErrOptionViolation = errors.New("mix: invalid option supplied")
