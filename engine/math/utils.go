package math

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed range [min, max]. Out-of-range values
// snap to the nearest bound; anything inside comes back unchanged.
func Clamp[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
