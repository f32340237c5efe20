// SPDX-License-Identifier: MIT

// Package vector implements Vector[T], a contiguous, growable, randomly
// indexable sequence that manages its own raw storage.
//
// What:
//
//	A Vector owns one memory.Buffer of Cap() slots. Slots [0, Len()) hold
//	live elements; slots [Len(), Cap()) are raw and never hold an element.
//	Every mutation keeps that split exact, with no double construction and
//	no double destruction.
//
// Growth:
//
//	When capacity must grow to hold need elements, the new capacity is
//	max(2*Cap(), need); a push into an empty vector allocates exactly one
//	slot. Reserve(n) grows to exactly n and never shrinks.
//
// Failure safety:
//
//	Allocation failures (from the configured memory.Allocator) and element
//	failures (from the algo.Traits hooks) leave the vector exactly as it was:
//	new storage is built completely before the old storage is destroyed and
//	freed. Values to insert are prepared before any element moves.
//
// Positions:
//
//	Mutating APIs take and return int indices. Iterator values are for
//	traversal and for package algo. Both are invalidated by any operation
//	that reallocates or shifts elements.
//
// Errors:
//
//   - ErrOutOfRange     checked access or insert/erase position outside the vector
//   - ErrEmpty          PopBack, Front or Back on an empty vector
//   - ErrNegativeCount  negative size or count argument
//   - memory errors     allocation refused (wrapped)
//   - hook errors       Traits.New / Clone / Relocate failures (wrapped)
//
// Ownership:
//
//	A Vector is single-owner and not safe for concurrent use. Move and
//	MoveFrom transfer the storage in O(1) and leave the source empty with
//	zero capacity. Release destroys every element and returns the storage;
//	releasing a moved-from vector, or any vector without capacity, is a no-op.
//
// Complexity:
//
//	Index/At/Set O(1); PushBack amortized O(1); Insert/Erase O(n - pos);
//	Reserve/Resize/Clone/Assign O(n).
package vector
