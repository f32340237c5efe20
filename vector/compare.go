// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"

	"github.com/katalvlaran/nstd/algo"
)

// Equal reports whether a and b hold the same elements in the same order.
// Complexity: O(n).
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	return algo.EqualRange[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// EqualFunc is Equal with a caller-supplied element equality.
// Complexity: O(n).
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	return algo.EqualRangeFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), eq)
}

// Less reports whether a orders before b lexicographically. A proper prefix
// orders first.
// Complexity: O(min(len(a), len(b))).
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return algo.LexicographicalCompare[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// LessFunc is Less with a caller-supplied strict weak ordering.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return algo.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// Compare returns -1, 0 or +1 as a orders before, equal to or after b.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return algo.Compare[T](a.Begin(), a.End(), b.Begin(), b.End())
}
