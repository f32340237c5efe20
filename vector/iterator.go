// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/nstd/memory"

// Iterator is a random-access position into a Vector's live elements.
// It satisfies algo.BidiReader, algo.BidiWriter and algo.BidiTaker, so the
// algorithms in package algo run directly over a vector.
//
// An Iterator is invalidated by any reallocation of its vector; erasing or
// inserting before it shifts the element it addresses.
type Iterator[T any] struct {
	p memory.Pos[T]
}

// Index returns the element index.
func (it Iterator[T]) Index() int { return it.p.Index() }

// Get returns the element.
func (it Iterator[T]) Get() T { return it.p.Get() }

// Set assigns v, dropping the element it replaces.
func (it Iterator[T]) Set(v T) { it.p.Set(v) }

// Take moves the element out and leaves the zero value in its slot.
func (it Iterator[T]) Take() T { return it.p.Take() }

// Ptr returns the element address.
func (it Iterator[T]) Ptr() *T { return it.p.Ptr() }

// Next returns the iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{p: it.p.Next()} }

// Prev returns the iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{p: it.p.Prev()} }

// Add returns the iterator n elements away; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{p: it.p.Add(n)} }

// Sub returns the signed distance it - other. Both must belong to the same vector.
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.p.Index() - other.p.Index() }

// Equal reports whether both iterators address the same slot of the same storage.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.p.Equal(other.p) }
