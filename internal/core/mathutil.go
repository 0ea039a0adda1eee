package core

import "golang.org/x/exp/constraints"

// Lerp interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalfUp rounds to the nearest integer, with halves rounding towards
// positive infinity.
func RoundHalfUp[T constraints.Float](v T) int {
	f := float64(v) + 0.5
	i := int(f)
	if float64(i) > f {
		i--
	}
	return i
}
