// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"math"
	"sync/atomic"
)

// MaxAllocSize bounds a single request to the Heap allocator.
const MaxAllocSize = math.MaxInt >> 1

// Block is an opaque handle to a granted allocation.
// The zero Block is the empty block and is never tracked.
type Block struct {
	// ID identifies the block for its allocator; 0 means no block.
	ID uint64

	// Size is the number of bytes granted.
	Size int
}

// Allocator grants and reclaims raw, untyped blocks sized in bytes.
// Implementations must be safe to call from one goroutine at a time;
// Tracker is additionally safe for concurrent use.
type Allocator interface {
	// Allocate grants a block of size bytes or reports why it cannot.
	Allocate(size int) (Block, error)

	// Deallocate returns a block obtained from Allocate.
	// Deallocating the zero Block is a no-op.
	Deallocate(b Block)
}

// Heap is the default Allocator. Go's runtime owns the actual memory,
// so Heap only validates requests and hands out unique block IDs.
type Heap struct {
	next atomic.Uint64
}

var defaultHeap = &Heap{}

// Default returns the shared Heap used when no allocator is configured.
func Default() Allocator { return defaultHeap }

// Allocate grants a block of size bytes.
// Complexity: O(1).
func (h *Heap) Allocate(size int) (Block, error) {
	if size < 0 || size > MaxAllocSize {
		return Block{}, fmt.Errorf("Heap.Allocate(%d): %w", size, ErrTooLarge)
	}

	return Block{ID: h.next.Add(1), Size: size}, nil
}

// Deallocate is a no-op; the garbage collector reclaims the slots.
func (h *Heap) Deallocate(Block) {}
