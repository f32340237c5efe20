// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// growCap applies the growth policy for a request of need elements.
func (v *Vector[T]) growCap(need int) int {
	return max(2*v.Cap(), need)
}

// relocateInto moves live elements [from, to) of the current storage into
// raw slots of nb starting at dst. With Traits.Relocate set, elements are
// copied instead and the source stays intact, so a failure is recoverable;
// the partially relocated destination is already unwound on return.
func (v *Vector[T]) relocateInto(nb *memory.Buffer[T], from, to, dst int) error {
	if v.traits.Relocate == nil {
		algo.ConstructMove[T](v.buf.At(from), v.buf.At(to), nb.At(dst))
		return nil
	}
	_, err := algo.ConstructCopy[T](v.buf.At(from), v.buf.At(to), nb.At(dst), v.traits.Relocate)

	return err
}

// reallocate moves the vector into fresh storage of newCap slots, leaving a
// gap of gap raw slots at pos that fill constructs. unfill undoes fill when
// a later step fails; nil means destroying the gap. The steps are:
//  1. allocate the new storage;
//  2. construct the gap (fill must unwind itself on failure);
//  3. relocate [0, pos) to the front and [pos, n) past the gap;
//  4. destroy the old elements and free the old storage;
//  5. swap in the new storage and length.
//
// Any failure before step 4 destroys what was built in the new storage,
// frees it, and leaves the vector untouched.
func (v *Vector[T]) reallocate(method string, newCap, pos, gap int, fill func(dst memory.Pos[T]) error, unfill func(dst memory.Pos[T])) error {
	nb, err := v.newBuffer(newCap)
	if err != nil {
		return vectorErrorf(method, err)
	}
	if fill != nil {
		if err = fill(nb.At(pos)); err != nil {
			nb.Free()
			return vectorErrorf(method, err)
		}
	}
	undo := func() {
		if unfill != nil {
			unfill(nb.At(pos))
		} else {
			algo.DestructN(nb.At(pos), gap)
		}
		nb.Free()
	}
	if err = v.relocateInto(nb, 0, pos, 0); err != nil {
		undo()
		return vectorErrorf(method, err)
	}
	if err = v.relocateInto(nb, pos, v.n, pos+gap); err != nil {
		algo.DestructN(nb.At(0), pos)
		undo()
		return vectorErrorf(method, err)
	}

	n := v.n
	v.destroyStorage()
	v.buf, v.n = nb, n+gap

	return nil
}

// Reserve grows capacity to exactly n when n > Cap(); it never shrinks.
// On failure the vector is unchanged.
// Complexity: O(n) when reallocating, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}

	return v.reallocate("Reserve", n, v.n, 0, nil, nil)
}

// ShrinkToFit reduces capacity to Len(). An empty vector frees its storage.
// Complexity: O(n).
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.Cap() == v.n:
		return nil
	case v.n == 0:
		v.destroyStorage()
		return nil
	default:
		return v.reallocate("ShrinkToFit", v.n, v.n, 0, nil, nil)
	}
}

// Resize sets the length to n. Shrinking destroys the trailing elements and
// keeps capacity; growing default-constructs the new elements through
// Traits.New, reallocating per the growth policy when needed.
// On failure length and capacity are unchanged.
// Complexity: O(|n - Len()|), O(n) when reallocating.
func (v *Vector[T]) Resize(n int) error {
	return v.resize("Resize", n, func(dst memory.Pos[T], k int) error {
		_, err := algo.ConstructN[T](dst, k, v.traits.New)
		return err
	})
}

// ResizeWith is Resize with new elements copy-constructed from value.
// Complexity: as Resize.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resize("ResizeWith", n, func(dst memory.Pos[T], k int) error {
		_, err := algo.ConstructFillN[T](dst, k, value, v.traits.Clone)
		return err
	})
}

// resize shrinks in place or grows by constructing k = n - Len() elements
// with fill, which must unwind itself on failure.
func (v *Vector[T]) resize(method string, n int, fill func(dst memory.Pos[T], k int) error) error {
	if n < 0 {
		return vectorErrorf(method, ErrNegativeCount)
	}
	if n <= v.n {
		algo.DestructN(v.buf.At(n), v.n-n)
		v.n = n
		return nil
	}

	k := n - v.n
	if n <= v.Cap() {
		if err := fill(v.buf.At(v.n), k); err != nil {
			return vectorErrorf(method, err)
		}
		v.n = n
		return nil
	}

	return v.reallocate(method, v.growCap(n), v.n, k, func(dst memory.Pos[T]) error {
		return fill(dst, k)
	}, nil)
}
