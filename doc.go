// SPDX-License-Identifier: MIT

// Package nstd is a small generic container and algorithm library that
// manages its own storage.
//
// What is inside:
//
//	algo/    position-based sequence algorithms: copy, move, fill,
//	         construct, destruct, equality, lexicographic comparison, min/max
//	memory/  the raw-storage boundary: Allocator, the default Heap, the
//	         leak-tracking, failure-injecting Tracker, and typed Buffer slots
//	vector/  Vector[T], a contiguous growable array with strong failure
//	         safety on every reallocation
//	list/    List[T], a sentinel-terminated doubly linked list whose
//	         iterators survive every unrelated insertion and removal
//
// Element lifecycle:
//
//	Both containers take an algo.Traits[T] describing how elements are
//	default-constructed, cloned, relocated and dropped. The zero Traits gives
//	plain Go value semantics.
//
// Allocation:
//
//	Every block of storage is requested from a memory.Allocator. Plug in a
//	memory.Tracker to log allocations through zap, cap memory use, inject
//	failures, and verify at the end of a test that nothing leaked:
//
//	tr := memory.NewTracker(memory.WithLogger(logger))
//	v := vector.New(vector.WithAllocator[int](tr))
//	...
//	v.Release()
//	err := tr.Check()
//
// See examples/ for a runnable program.
package nstd
