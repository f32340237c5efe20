// SPDX-License-Identifier: MIT

package list

// Iterator is a bidirectional handle to one node of a List, or to its End
// sentinel. It satisfies algo.BidiReader, algo.BidiWriter and algo.BidiTaker.
//
// An Iterator stays valid across every insertion and every removal of other
// nodes. Once its own node is removed the List rejects it with
// ErrInvalidPosition; dereferencing it is a caller error.
type Iterator[T any] struct {
	a   *arena[T]
	i   int
	gen uint32
}

func (it Iterator[T]) mustElem(op string) *node[T] {
	if it.i == 0 {
		panic("list: Iterator." + op + " on the End sentinel")
	}

	return it.a.node(it.i)
}

// Get returns the element. Panics on the End sentinel.
func (it Iterator[T]) Get() T { return it.mustElem("Get").val }

// Set assigns v, dropping the element it replaces. Panics on the End sentinel.
func (it Iterator[T]) Set(v T) {
	nd := it.mustElem("Set")
	old := nd.val
	nd.val = v
	if it.a.drop != nil {
		it.a.drop(old)
	}
}

// Take moves the element out, leaving the zero value in the node.
// Panics on the End sentinel.
func (it Iterator[T]) Take() T {
	nd := it.mustElem("Take")
	v := nd.val
	var zero T
	nd.val = zero

	return v
}

// Ptr returns the element address, stable until the node is removed.
// Panics on the End sentinel.
func (it Iterator[T]) Ptr() *T { return &it.mustElem("Ptr").val }

// Next returns the following position; from the last element that is End,
// and from End it wraps to the first element.
func (it Iterator[T]) Next() Iterator[T] { return it.a.at(it.a.link(it.i).next) }

// Prev returns the preceding position; from the first element that is End.
func (it Iterator[T]) Prev() Iterator[T] { return it.a.at(it.a.link(it.i).prev) }

// Equal reports whether both iterators address the same node of the same list.
// It has no side effects.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.a == other.a && it.i == other.i
}

// IsEnd reports whether it is the End sentinel.
func (it Iterator[T]) IsEnd() bool { return it.i == 0 }

// Valid reports whether it is the End sentinel, or a node that has not been
// removed since it was obtained, of a list whose nodes were not released.
// Handles follow their nodes through Move, MoveFrom and Swap.
func (it Iterator[T]) Valid() bool {
	if it.a == nil || it.a.released {
		return false
	}

	return it.i == 0 || it.a.live(it.i, it.gen)
}
