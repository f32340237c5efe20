// SPDX-License-Identifier: MIT

package list

import (
	"cmp"

	"github.com/katalvlaran/nstd/algo"
)

// Equal reports whether a and b hold the same elements in the same order.
// Complexity: O(n).
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	return algo.EqualRange[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	return algo.EqualRangeFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), eq)
}

// Less reports whether a orders before b lexicographically.
// Complexity: O(min(len(a), len(b))).
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return algo.LexicographicalCompare[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// LessFunc is Less with a caller-supplied strict weak ordering.
func LessFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	return algo.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// Compare returns -1, 0 or +1 as a orders before, equal to or after b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return algo.Compare[T](a.Begin(), a.End(), b.Begin(), b.End())
}
