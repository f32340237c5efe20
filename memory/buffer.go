// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"unsafe"
)

// Buffer is an exclusively owned block of capacity slots of type T.
//
// A slot is either raw (no element) or live. Construct begins a lifetime in a
// raw slot, Destroy ends one, and Live counts the live slots. The Buffer does
// not know which slots are live; its owner keeps that invariant (for a vector,
// the prefix [0, length)).
//
// Destroy and Replace hand the outgoing element to the drop hook; Destroy then
// zeroes the slot, so raw slots never pin garbage.
type Buffer[T any] struct {
	alloc Allocator
	block Block
	slots []T
	live  int
	drop  func(T)
}

// SizeOf returns the byte size of one slot of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// NewBuffer reserves capacity*SizeOf[T]() bytes from a and returns a Buffer
// with capacity raw slots. drop, if non-nil, runs on every destroyed element.
//
// Errors:
//   - ErrTooLarge when capacity is negative or the byte size overflows.
//   - any error of a.Allocate, wrapped.
//
// Complexity: O(capacity) to zero the slots.
func NewBuffer[T any](a Allocator, capacity int, drop func(T)) (*Buffer[T], error) {
	if a == nil {
		a = Default()
	}
	size := SizeOf[T]()
	if capacity < 0 || (size > 0 && capacity > MaxAllocSize/size) {
		return nil, fmt.Errorf("NewBuffer(%d): %w", capacity, ErrTooLarge)
	}
	block, err := a.Allocate(capacity * size)
	if err != nil {
		return nil, fmt.Errorf("NewBuffer(%d): %w", capacity, err)
	}

	return &Buffer[T]{
		alloc: a,
		block: block,
		slots: make([]T, capacity),
		drop:  drop,
	}, nil
}

// Cap returns the slot count. A nil Buffer has capacity 0.
func (b *Buffer[T]) Cap() int {
	if b == nil {
		return 0
	}

	return len(b.slots)
}

// Live returns the number of live slots. A nil Buffer has none.
func (b *Buffer[T]) Live() int {
	if b == nil {
		return 0
	}

	return b.live
}

// Construct begins the lifetime of v in raw slot i.
func (b *Buffer[T]) Construct(i int, v T) {
	b.slots[i] = v
	b.live++
}

// Destroy ends the lifetime of the element in slot i; the slot becomes raw.
func (b *Buffer[T]) Destroy(i int) {
	if b.drop != nil {
		b.drop(b.slots[i])
	}
	var zero T
	b.slots[i] = zero
	b.live--
}

// Take moves the element out of live slot i, leaving the zero value.
// The slot stays live.
func (b *Buffer[T]) Take(i int) T {
	v := b.slots[i]
	var zero T
	b.slots[i] = zero

	return v
}

// Load returns the element in slot i.
func (b *Buffer[T]) Load(i int) T { return b.slots[i] }

// Store assigns v into live slot i without dropping the previous value.
// Owners use it on slots they know hold a moved-from zero value.
func (b *Buffer[T]) Store(i int, v T) { b.slots[i] = v }

// Replace assigns v into live slot i, dropping the value it overwrites.
func (b *Buffer[T]) Replace(i int, v T) {
	if b.drop != nil {
		b.drop(b.slots[i])
	}
	b.slots[i] = v
}

// Ptr returns the address of slot i. It stays valid until the Buffer is freed.
func (b *Buffer[T]) Ptr(i int) *T { return &b.slots[i] }

// View returns the first n slots as a slice sharing the Buffer's storage.
func (b *Buffer[T]) View(n int) []T {
	if b == nil {
		return nil
	}

	return b.slots[:n:n]
}

// At returns the position of slot i.
func (b *Buffer[T]) At(i int) Pos[T] { return Pos[T]{b: b, i: i} }

// Free returns the block to the allocator. Every slot must be raw again;
// freeing live elements is a bug in the owner and panics.
// Freeing a nil Buffer is a no-op.
func (b *Buffer[T]) Free() {
	if b == nil {
		return
	}
	if b.live != 0 {
		panic(fmt.Sprintf("memory: Buffer.Free with %d live slots", b.live))
	}
	b.alloc.Deallocate(b.block)
	b.block = Block{}
	b.slots = nil
}

// Pos is a bidirectional position into a Buffer. It satisfies every
// position constraint of package algo, including the raw-slot ones.
type Pos[T any] struct {
	b *Buffer[T]
	i int
}

// Index returns the slot index.
func (p Pos[T]) Index() int { return p.i }

// Get returns the element.
func (p Pos[T]) Get() T { return p.b.slots[p.i] }

// Set assigns into a live slot, dropping the overwritten value.
func (p Pos[T]) Set(v T) { p.b.Replace(p.i, v) }

// Take moves the element out, leaving the zero value.
func (p Pos[T]) Take() T { return p.b.Take(p.i) }

// Emplace constructs v in a raw slot.
func (p Pos[T]) Emplace(v T) { p.b.Construct(p.i, v) }

// Destroy ends the element's lifetime.
func (p Pos[T]) Destroy() { p.b.Destroy(p.i) }

// Ptr returns the slot address.
func (p Pos[T]) Ptr() *T { return &p.b.slots[p.i] }

// Next returns the following position.
func (p Pos[T]) Next() Pos[T] { return Pos[T]{b: p.b, i: p.i + 1} }

// Prev returns the preceding position.
func (p Pos[T]) Prev() Pos[T] { return Pos[T]{b: p.b, i: p.i - 1} }

// Add returns the position n slots away.
func (p Pos[T]) Add(n int) Pos[T] { return Pos[T]{b: p.b, i: p.i + n} }

// Equal reports whether both positions address the same slot of the same Buffer.
func (p Pos[T]) Equal(other Pos[T]) bool { return p.b == other.b && p.i == other.i }
