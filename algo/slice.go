// SPDX-License-Identifier: MIT

package algo

// SliceIter is a bidirectional position over a Go slice. It satisfies every
// position constraint in this package, so plain slices can take part in the
// algorithms as sources or destinations.
//
// Two SliceIters compare by index only; compare positions over the same slice.
type SliceIter[T any] struct {
	s []T
	i int
}

// SliceBegin returns the position of the first element of s.
func SliceBegin[T any](s []T) SliceIter[T] {
	return SliceIter[T]{s: s}
}

// SliceEnd returns the past-the-end position of s.
func SliceEnd[T any](s []T) SliceIter[T] {
	return SliceIter[T]{s: s, i: len(s)}
}

// SliceAt returns the position of s[i].
func SliceAt[T any](s []T, i int) SliceIter[T] {
	return SliceIter[T]{s: s, i: i}
}

// Index returns the slice index of the position.
func (it SliceIter[T]) Index() int { return it.i }

// Get returns the element at the position.
func (it SliceIter[T]) Get() T { return it.s[it.i] }

// Set assigns v at the position.
func (it SliceIter[T]) Set(v T) { it.s[it.i] = v }

// Take returns the element and leaves the zero value behind.
func (it SliceIter[T]) Take() T {
	v := it.s[it.i]
	var zero T
	it.s[it.i] = zero

	return v
}

// Emplace stores v; slice memory is always initialized, so this is Set.
func (it SliceIter[T]) Emplace(v T) { it.s[it.i] = v }

// Destroy resets the element to the zero value.
func (it SliceIter[T]) Destroy() {
	var zero T
	it.s[it.i] = zero
}

// Next returns the following position.
func (it SliceIter[T]) Next() SliceIter[T] { return SliceIter[T]{s: it.s, i: it.i + 1} }

// Prev returns the preceding position.
func (it SliceIter[T]) Prev() SliceIter[T] { return SliceIter[T]{s: it.s, i: it.i - 1} }

// Equal reports whether both positions have the same index.
func (it SliceIter[T]) Equal(other SliceIter[T]) bool { return it.i == other.i }
