// Package mathx provides the small set of generic integer helpers the core
// needs for rounding and clamping register and timing arithmetic.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CeilDiv returns ceil(a/b) for non-negative integers. b == 0 returns 0.
func CeilDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// RoundDiv returns round-half-up(a/b) for non-negative integers. b == 0 returns 0.
func RoundDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
