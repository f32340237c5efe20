// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// Vector is a contiguous growable sequence of T.
// The zero value is an empty vector using memory.Default() and zero Traits.
type Vector[T any] struct {
	buf    *memory.Buffer[T] // nil while capacity is 0
	n      int               // live prefix length
	alloc  memory.Allocator
	traits algo.Traits[T]
}

// New returns an empty vector with no storage.
// Complexity: O(len(opts)).
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// NewN returns a vector of n default-constructed elements, capacity n.
// On failure nothing is left allocated.
// Complexity: O(n).
func NewN[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}

	return v, nil
}

// NewFilled returns a vector of n copies of value, capacity n.
// Complexity: O(n).
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.ResizeWith(n, value); err != nil {
		return nil, err
	}

	return v, nil
}

// FromSlice returns a vector holding copies of vals, capacity len(vals).
// Complexity: O(len(vals)).
func FromSlice[T any](vals []T, opts ...Option[T]) (*Vector[T], error) {
	return FromRange[T](algo.SliceBegin(vals), algo.SliceEnd(vals), opts...)
}

// FromRange returns a vector holding copies of [first, last).
// Complexity: O(n).
func FromRange[T any, I algo.Reader[T, I]](first, last I, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	n := algo.Distance(first, last)
	if n == 0 {
		return v, nil
	}
	nb, err := v.newBuffer(n)
	if err != nil {
		return nil, vectorErrorf("FromRange", err)
	}
	if _, err = algo.ConstructCopy[T](first, last, nb.At(0), v.traits.Clone); err != nil {
		nb.Free()
		return nil, vectorErrorf("FromRange", err)
	}
	v.buf, v.n = nb, n

	return v, nil
}

// allocator returns the configured allocator or the default heap.
func (v *Vector[T]) allocator() memory.Allocator {
	if v.alloc == nil {
		return memory.Default()
	}

	return v.alloc
}

// newBuffer reserves raw storage for capacity elements.
func (v *Vector[T]) newBuffer(capacity int) (*memory.Buffer[T], error) {
	return memory.NewBuffer[T](v.allocator(), capacity, v.traits.Drop)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// Index returns element i without bounds checking against Len().
// Indexing at or past Len() is a caller error.
func (v *Vector[T]) Index(i int) T { return v.buf.Load(i) }

// Ref returns the address of element i without bounds checking.
// The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T { return v.buf.Ptr(i) }

// At returns element i, or ErrOutOfRange when i is not in [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, rangeErrorf("At", i, v.n)
	}

	return v.buf.Load(i), nil
}

// Set assigns value to element i, dropping the previous element.
// Returns ErrOutOfRange when i is not in [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.n {
		return rangeErrorf("Set", i, v.n)
	}
	v.buf.Replace(i, value)

	return nil
}

// Front returns the first element or ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, vectorErrorf("Front", ErrEmpty)
	}

	return v.buf.Load(0), nil
}

// Back returns the last element or ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, vectorErrorf("Back", ErrEmpty)
	}

	return v.buf.Load(v.n - 1), nil
}

// Data returns the live elements as a slice sharing the vector's storage.
// Writes through it bypass Traits.Drop; the slice is invalidated by any
// reallocation.
func (v *Vector[T]) Data() []T { return v.buf.View(v.n) }

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{p: v.buf.At(0)} }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{p: v.buf.At(v.n)} }

// All yields index/element pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf.Load(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.buf.Load(i)) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf.Load(i)) {
				return
			}
		}
	}
}

// Clone returns a copy holding Clone-constructed copies of the live
// elements. Capacity equals Len(); spare capacity is not preserved.
// On failure nothing is left allocated and v is unchanged.
// Complexity: O(n).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{alloc: v.alloc, traits: v.traits}
	if v.n == 0 {
		return out, nil
	}
	nb, err := out.newBuffer(v.n)
	if err != nil {
		return nil, vectorErrorf("Clone", err)
	}
	if _, err = algo.ConstructCopy[T](v.buf.At(0), v.buf.At(v.n), nb.At(0), v.traits.Clone); err != nil {
		nb.Free()
		return nil, vectorErrorf("Clone", err)
	}
	out.buf, out.n = nb, v.n

	return out, nil
}

// CopyFrom replaces the contents of v with copies of other's elements.
// On failure v is unchanged.
// Complexity: O(len(v) + len(other)).
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == v {
		return nil
	}
	vals, err := v.cloneSlice(other.Data())
	if err != nil {
		return vectorErrorf("CopyFrom", err)
	}

	return v.assignValues("CopyFrom", vals)
}

// Move transfers v's storage into a new vector in O(1) and leaves v empty
// with zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf, n: v.n, alloc: v.alloc, traits: v.traits}
	v.buf, v.n = nil, 0

	return out
}

// MoveFrom releases v's elements and takes over other's storage, allocator
// and traits. other is left empty with zero capacity.
// Complexity: O(len(v)) for the release, O(1) for the transfer.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if other == v {
		return
	}
	v.Release()
	v.buf, v.n, v.alloc, v.traits = other.buf, other.n, other.alloc, other.traits
	other.buf, other.n = nil, 0
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Release destroys every element and returns the storage to the allocator.
// The vector stays usable, empty and without capacity. Releasing a vector
// that owns no storage is a no-op.
// Complexity: O(n).
func (v *Vector[T]) Release() {
	v.destroyStorage()
	v.n = 0
}

// destroyStorage destroys [0, n) and frees the buffer. n is left to the caller.
func (v *Vector[T]) destroyStorage() {
	if v.buf == nil {
		return
	}
	algo.DestructN(v.buf.At(0), v.n)
	v.buf.Free()
	v.buf = nil
}

// String renders the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
