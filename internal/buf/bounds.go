// Package buf provides overflow-safe size arithmetic shared by the
// allocation and path-composition packages.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int. Operands are byte sizes and must be non-negative; a negative
// operand is reported as overflow.
func AddOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// CheckCap reports whether a payload of n bytes plus one terminator byte
// fits in a buffer of the given capacity.
func CheckCap(n, capacity int) bool {
	return n >= 0 && n < capacity
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is the check for count * elementSize products
// before they reach an allocator.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
