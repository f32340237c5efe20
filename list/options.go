// SPDX-License-Identifier: MIT

package list

import (
	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// DefaultChunkSize is the number of nodes reserved per arena chunk.
const DefaultChunkSize = 64

// Option configures a List at construction.
type Option[T any] func(l *List[T])

// WithAllocator makes the list reserve its node chunks from a.
// A nil allocator keeps memory.Default().
func WithAllocator[T any](a memory.Allocator) Option[T] {
	return func(l *List[T]) {
		if a != nil {
			l.alloc = a
		}
	}
}

// WithTraits installs the element lifecycle hooks.
func WithTraits[T any](traits algo.Traits[T]) Option[T] {
	return func(l *List[T]) { l.traits = traits }
}

// WithChunkSize sets how many nodes each arena chunk holds.
// Panics if n <= 0.
func WithChunkSize[T any](n int) Option[T] {
	if n <= 0 {
		panic("list: WithChunkSize requires n > 0")
	}

	return func(l *List[T]) { l.chunkSize = n }
}
