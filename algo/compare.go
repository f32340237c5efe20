// SPDX-License-Identifier: MIT

package algo

import "cmp"

// Equal reports whether [first1, last1) equals the range of the same length
// starting at first2. The second range must be at least as long.
// Complexity: O(n).
func Equal[T comparable, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2 I2) bool {
	for !first1.Equal(last1) {
		if first1.Get() != first2.Get() {
			return false
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	return true
}

// EqualFunc is Equal with a caller-supplied equality predicate.
// Complexity: O(n).
func EqualFunc[T any, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2 I2, eq func(a, b T) bool) bool {
	for !first1.Equal(last1) {
		if !eq(first1.Get(), first2.Get()) {
			return false
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	return true
}

// EqualRange reports whether [first1, last1) and [first2, last2) have the
// same length and pairwise equal elements.
// Complexity: O(min(n, m)).
func EqualRange[T comparable, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2) bool {
	for !first1.Equal(last1) && !first2.Equal(last2) {
		if first1.Get() != first2.Get() {
			return false
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	return first1.Equal(last1) && first2.Equal(last2)
}

// EqualRangeFunc is EqualRange with a caller-supplied equality predicate.
// Complexity: O(min(n, m)).
func EqualRangeFunc[T any, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2, eq func(a, b T) bool) bool {
	for !first1.Equal(last1) && !first2.Equal(last2) {
		if !eq(first1.Get(), first2.Get()) {
			return false
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	return first1.Equal(last1) && first2.Equal(last2)
}

// LexicographicalCompare reports whether [first1, last1) orders strictly
// before [first2, last2). The first mismatching element decides; a strict
// prefix is less than the longer range.
// Complexity: O(min(n, m)).
func LexicographicalCompare[T cmp.Ordered, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2) bool {
	return LexicographicalCompareFunc(first1, last1, first2, last2, cmp.Less[T])
}

// LexicographicalCompareFunc is LexicographicalCompare with a caller-supplied
// strict weak ordering.
// Complexity: O(min(n, m)).
func LexicographicalCompareFunc[T any, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2, less func(a, b T) bool) bool {
	for !first1.Equal(last1) && !first2.Equal(last2) {
		a, b := first1.Get(), first2.Get()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	return first1.Equal(last1) && !first2.Equal(last2)
}

// Compare returns -1, 0 or +1 as [first1, last1) orders before, equal to or
// after [first2, last2) lexicographically.
// Complexity: O(min(n, m)).
func Compare[T cmp.Ordered, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2) int {
	return CompareFunc(first1, last1, first2, last2, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied three-way comparison.
// Complexity: O(min(n, m)).
func CompareFunc[T any, I1 Reader[T, I1], I2 Reader[T, I2]](first1, last1 I1, first2, last2 I2, cmpFn func(a, b T) int) int {
	for !first1.Equal(last1) && !first2.Equal(last2) {
		if c := cmpFn(first1.Get(), first2.Get()); c != 0 {
			return c
		}
		first1, first2 = first1.Next(), first2.Next()
	}

	switch {
	case first1.Equal(last1) && first2.Equal(last2):
		return 0
	case first1.Equal(last1):
		return -1 // first range is a strict prefix
	default:
		return 1
	}
}

// Min returns the smaller of a and b, and a when neither is less.
func Min[T cmp.Ordered](a, b T) T {
	if b < a {
		return b
	}

	return a
}

// MinFunc returns the smaller of a and b under less, and a on ties.
func MinFunc[T any](a, b T, less func(x, y T) bool) T {
	if less(b, a) {
		return b
	}

	return a
}

// Max returns the larger of a and b, and a when neither is less.
func Max[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}

	return a
}

// MaxFunc returns the larger of a and b under less, and a on ties.
func MaxFunc[T any](a, b T, less func(x, y T) bool) T {
	if less(a, b) {
		return b
	}

	return a
}
