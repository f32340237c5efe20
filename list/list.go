// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// List is a doubly linked sequence of T.
// The zero value is an empty list using memory.Default(), zero Traits and
// DefaultChunkSize.
type List[T any] struct {
	a         *arena[T] // nil until first use and after Release
	alloc     memory.Allocator
	traits    algo.Traits[T]
	chunkSize int
}

// New returns an empty list. No chunk is reserved until the first insertion.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// lazyInit returns the arena, creating an empty one on first use.
func (l *List[T]) lazyInit() *arena[T] {
	if l.a == nil {
		cs := l.chunkSize
		if cs == 0 {
			cs = DefaultChunkSize
		}
		l.a = newArena[T](cs, l.traits.Drop)
	}

	return l.a
}

func (l *List[T]) allocator() memory.Allocator {
	if l.alloc == nil {
		return memory.Default()
	}

	return l.alloc
}

// Len returns the number of elements.
// Complexity: O(1).
func (l *List[T]) Len() int {
	if l.a == nil {
		return 0
	}

	return l.a.n
}

// Empty reports whether Len() == 0.
func (l *List[T]) Empty() bool { return l.Len() == 0 }

// Begin returns an iterator to the first element, or End() when empty.
func (l *List[T]) Begin() Iterator[T] {
	a := l.lazyInit()
	return a.at(a.root.next)
}

// End returns the sentinel iterator.
func (l *List[T]) End() Iterator[T] { return l.lazyInit().at(0) }

// RBegin returns an iterator to the last element, or End() when empty.
func (l *List[T]) RBegin() Iterator[T] {
	a := l.lazyInit()
	return a.at(a.root.prev)
}

// Front returns the first element or ErrEmpty.
func (l *List[T]) Front() (T, error) {
	if l.Empty() {
		var zero T
		return zero, listErrorf("Front", ErrEmpty)
	}

	return l.a.node(l.a.root.next).val, nil
}

// Back returns the last element or ErrEmpty.
func (l *List[T]) Back() (T, error) {
	if l.Empty() {
		var zero T
		return zero, listErrorf("Back", ErrEmpty)
	}

	return l.a.node(l.a.root.prev).val, nil
}

// PushBack moves value in at the back and returns its iterator.
// On failure the list is unchanged and value still belongs to the caller.
// Complexity: O(1) amortized.
func (l *List[T]) PushBack(value T) (Iterator[T], error) {
	return l.insert("PushBack", 0, value)
}

// PushFront moves value in at the front and returns its iterator.
// Complexity: O(1) amortized.
func (l *List[T]) PushFront(value T) (Iterator[T], error) {
	return l.insert("PushFront", l.lazyInit().root.next, value)
}

// EmplaceBack constructs an element with ctor (Traits.New when nil) and
// appends it. On failure nothing is linked and nothing leaks.
func (l *List[T]) EmplaceBack(ctor func() (T, error)) (Iterator[T], error) {
	return l.emplace("EmplaceBack", 0, ctor)
}

// EmplaceFront constructs an element with ctor (Traits.New when nil) and
// prepends it.
func (l *List[T]) EmplaceFront(ctor func() (T, error)) (Iterator[T], error) {
	return l.emplace("EmplaceFront", l.lazyInit().root.next, ctor)
}

// InsertBefore moves value in before pos and returns its iterator.
// pos may be End(), which appends.
func (l *List[T]) InsertBefore(pos Iterator[T], value T) (Iterator[T], error) {
	if err := l.check("InsertBefore", pos, true); err != nil {
		return Iterator[T]{}, err
	}

	return l.insert("InsertBefore", pos.i, value)
}

// InsertAfter moves value in after pos and returns its iterator.
// pos may be End(), which prepends.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) (Iterator[T], error) {
	if err := l.check("InsertAfter", pos, true); err != nil {
		return Iterator[T]{}, err
	}

	return l.insert("InsertAfter", l.a.link(pos.i).next, value)
}

func (l *List[T]) insert(method string, at int, value T) (Iterator[T], error) {
	a := l.lazyInit()
	if err := a.reserve(l.allocator()); err != nil {
		return Iterator[T]{}, listErrorf(method, err)
	}

	return a.at(a.linkBefore(at, value)), nil
}

func (l *List[T]) emplace(method string, at int, ctor func() (T, error)) (Iterator[T], error) {
	var (
		value T
		err   error
	)
	if ctor != nil {
		value, err = ctor()
	} else {
		value, err = l.traits.MakeValue()
	}
	if err != nil {
		return Iterator[T]{}, listErrorf(method, err)
	}
	it, err := l.insert(method, at, value)
	if err != nil {
		l.traits.DropValue(value)
	}

	return it, err
}

// PopBack removes and destroys the last element. Returns ErrEmpty on an
// empty list.
// Complexity: O(1).
func (l *List[T]) PopBack() error {
	if l.Empty() {
		return listErrorf("PopBack", ErrEmpty)
	}
	l.a.remove(l.a.root.prev)

	return nil
}

// PopFront removes and destroys the first element. Returns ErrEmpty on an
// empty list.
// Complexity: O(1).
func (l *List[T]) PopFront() error {
	if l.Empty() {
		return listErrorf("PopFront", ErrEmpty)
	}
	l.a.remove(l.a.root.next)

	return nil
}

// Remove destroys the element at pos and returns the iterator that followed
// it. Iterators to other elements stay valid.
// Complexity: O(1).
func (l *List[T]) Remove(pos Iterator[T]) (Iterator[T], error) {
	if err := l.check("Remove", pos, false); err != nil {
		return Iterator[T]{}, err
	}

	return l.a.at(l.a.remove(pos.i)), nil
}

// MoveBefore relinks the element at pos in front of mark; mark may be End().
// No element is copied and every iterator stays valid.
// Complexity: O(1).
func (l *List[T]) MoveBefore(pos, mark Iterator[T]) error {
	if err := l.check("MoveBefore", pos, false); err != nil {
		return err
	}
	if err := l.check("MoveBefore", mark, true); err != nil {
		return err
	}
	l.a.relink(pos.i, mark.i)

	return nil
}

// MoveAfter relinks the element at pos right after mark; mark may be End().
// Complexity: O(1).
func (l *List[T]) MoveAfter(pos, mark Iterator[T]) error {
	if err := l.check("MoveAfter", pos, false); err != nil {
		return err
	}
	if err := l.check("MoveAfter", mark, true); err != nil {
		return err
	}
	if pos.i != mark.i {
		l.a.relink(pos.i, l.a.link(mark.i).next)
	}

	return nil
}

// check validates that pos addresses a live node of l, or its sentinel when
// allowEnd is set.
func (l *List[T]) check(method string, pos Iterator[T], allowEnd bool) error {
	switch {
	case pos.a == nil || pos.a != l.a:
		return listErrorf(method, ErrInvalidPosition)
	case pos.i == 0 && allowEnd:
		return nil
	case !l.a.live(pos.i, pos.gen):
		return listErrorf(method, ErrInvalidPosition)
	default:
		return nil
	}
}

// All yields the elements front to back. The loop body may remove the
// current element and nothing else: removing or moving any other element,
// or clearing the list, mid-loop leaves the rest of the sequence undefined.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.a == nil {
			return
		}
		for i := l.a.root.next; i != 0; {
			nd := l.a.node(i)
			i = nd.next
			if !yield(nd.val) {
				return
			}
		}
	}
}

// Backward yields the elements back to front, under the same mutation rule
// as All.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.a == nil {
			return
		}
		for i := l.a.root.prev; i != 0; {
			nd := l.a.node(i)
			i = nd.prev
			if !yield(nd.val) {
				return
			}
		}
	}
}

// Clear destroys every element. Reserved chunks are kept for reuse and
// outstanding iterators become invalid.
// Complexity: O(n).
func (l *List[T]) Clear() {
	if l.a != nil {
		l.a.clear()
	}
}

// Release destroys every element and returns every chunk to the allocator.
// The list stays usable and empty. Releasing a moved-from list is a no-op.
// Complexity: O(n + chunks).
func (l *List[T]) Release() {
	if l.a == nil {
		return
	}
	l.a.clear()
	l.a.release()
	l.a = nil
}

// Clone returns a list holding Traits.Clone copies of l's elements, with
// the same allocator, traits and chunk size. On failure nothing leaks.
// Complexity: O(n).
func (l *List[T]) Clone() (*List[T], error) {
	out := &List[T]{alloc: l.alloc, traits: l.traits, chunkSize: l.chunkSize}
	for v := range l.All() {
		c, err := l.traits.CloneValue(v)
		if err != nil {
			out.Release()
			return nil, listErrorf("Clone", err)
		}
		if _, err = out.PushBack(c); err != nil {
			l.traits.DropValue(c)
			out.Release()
			return nil, listErrorf("Clone", err)
		}
	}

	return out, nil
}

// Move transfers l's nodes into a new list in O(1) and leaves l empty.
// Iterators into l now belong to the returned list.
func (l *List[T]) Move() *List[T] {
	out := &List[T]{a: l.a, alloc: l.alloc, traits: l.traits, chunkSize: l.chunkSize}
	l.a = nil

	return out
}

// MoveFrom releases l's elements and takes over other's nodes, allocator,
// traits and chunk size. other is left empty.
// Complexity: O(len(l)) for the release, O(1) for the transfer.
func (l *List[T]) MoveFrom(other *List[T]) {
	if other == l {
		return
	}
	l.Release()
	l.a, l.alloc, l.traits, l.chunkSize = other.a, other.alloc, other.traits, other.chunkSize
	other.a = nil
}

// Swap exchanges the contents of l and other in O(1). Iterators follow
// their elements.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// String renders the elements like a slice.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
