package mix

import (
	"strconv"
)

// Sentences produced by the formatter.
const (
	ImpossibleMessage  = "Such mix is impossible."
	OutOfToleranceNote = "Warning: best effort mix is outside tolerance."
)

// FormatPlan renders one "Add <amount> ml of <name>." line per draw, in
// plan order. An empty plan yields the single ImpossibleMessage line.
func FormatPlan(plan Plan) []string {
	if len(plan) == 0 {
		return []string{ImpossibleMessage}
	}
	lines := make([]string, 0, len(plan))
	for _, d := range plan {
		amount := strconv.FormatFloat(roundAmount(d.Volume), 'f', -1, 64)
		lines = append(lines, "Add "+amount+" ml of "+d.Fluid.Name()+".")
	}
	return lines
}

// Format renders the outcome of Solve, SolveExact or SolveEvolutionary.
//
//   - any error or an empty plan  → ImpossibleMessage;
//   - a plan within tolerance     → FormatPlan(res.Plan);
//   - a best-effort plan outside tolerance → FormatPlan(res.Plan) followed
//     by OutOfToleranceNote.
func Format(res Result, err error) []string {
	if err != nil || len(res.Plan) == 0 {
		return []string{ImpossibleMessage}
	}
	lines := FormatPlan(res.Plan)
	if !res.WithinTolerance {
		lines = append(lines, OutOfToleranceNote)
	}
	return lines
}
