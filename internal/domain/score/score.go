// Package score normalizes raw mood scores into the canonical [Min, Max] domain.
package score

import (
	"math"
)

// Domain bounds. 0 is the best mood, 100 the worst.
const (
	Min = 0.0
	Max = 100.0
)

// Normalize clamps raw into [Min, Max]. Non-finite input is reported as
// ErrNotFinite rather than coerced: 0 is a legitimate best-mood value, so an
// unknown score must stay distinguishable from it.
func Normalize(raw float64) (float64, error) {
	if !IsFinite(raw) {
		return 0, ErrNotFinite
	}
	return Clamp(raw), nil
}

// Clamp bounds raw into [Min, Max]. Callers must have checked finiteness.
func Clamp(raw float64) float64 {
	return math.Max(Min, math.Min(Max, raw))
}

// IsFinite reports whether raw is a usable score value.
func IsFinite(raw float64) bool {
	return !math.IsNaN(raw) && !math.IsInf(raw, 0)
}
