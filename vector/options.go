// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// Option configures a Vector at construction.
type Option[T any] func(v *Vector[T])

// WithAllocator makes the vector request its storage from a.
// A nil allocator keeps memory.Default().
func WithAllocator[T any](a memory.Allocator) Option[T] {
	return func(v *Vector[T]) {
		if a != nil {
			v.alloc = a
		}
	}
}

// WithTraits installs the element lifecycle hooks.
func WithTraits[T any](traits algo.Traits[T]) Option[T] {
	return func(v *Vector[T]) { v.traits = traits }
}
