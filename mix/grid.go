package mix

import "math"

// stepEps absorbs float noise when counting whole steps inside a limit,
// e.g. 0.3/0.1 = 2.9999999999999996 must count as 3 steps.
const stepEps = 1e-9

// stepsWithin returns how many whole steps fit in limit (0 if none).
func stepsWithin(limit, step float64) int {
	if !(limit > 0) {
		return 0
	}
	n := math.Floor(limit/step + stepEps)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// stepVolume converts k steps to a volume, clipped to limit so that float
// noise never produces a draw above the fluid's volume.
func stepVolume(k int, step, limit float64) float64 {
	v := float64(k) * step
	if v > limit {
		return limit
	}
	return v
}

// exceeds reports whether v is above limit by more than float noise.
func exceeds(v, limit float64) bool {
	return v-limit > stepEps*math.Max(1, limit)
}

// roundAmount trims float noise for display (1e-9 ml).
func roundAmount(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
