// pkg/utils/math.go
package utils

import "math"

// Clamp restricts v to the closed range [lo, hi].
// When hi < lo the range is empty and lo wins. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Center returns the coordinate that centres a span of size inner inside a span of size outer.
func Center(outer, inner float64) float64 {
	return (outer - inner) / 2
}
