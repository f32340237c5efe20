// SPDX-License-Identifier: MIT

// Package algo implements the low-level sequence algorithms shared by the
// nstd containers: copy, move, fill, construct, destruct, equality,
// lexicographic comparison and min/max.
//
// What:
//
//   - Positions: small value types that step through a sequence. The
//     algorithms never see a container, only positions constrained by
//     method sets (Reader, Writer, Taker, Slot and their Bidi forms).
//   - Assignment algorithms (Copy, Move, Fill and their _N/_To/Backward
//     variants) write into live objects.
//   - Construction algorithms (Construct*, ConstructCopy*, ConstructMove*)
//     begin the lifetime of objects in raw slots; Destruct ends it.
//   - Comparison helpers: Equal, EqualRange, LexicographicalCompare,
//     Compare, Min, Max and their predicate forms.
//
// Direction:
//
//	Forward algorithms process low-to-high; Backward algorithms process
//	high-to-low so that a destination ahead of an overlapping source is safe.
//
// Failure:
//
//	Assignment algorithms cannot fail. Fallible construction algorithms
//	destroy whatever they already constructed before returning the error,
//	so the destination range is raw again.
//
// Type arguments:
//
//	The element type T only appears in constraints, so it is passed
//	explicitly while positions are inferred:
//
//	end := algo.Copy[int](src, srcEnd, dst)
//
// Complexity:
//
//	Every algorithm is single-pass, O(n) in the range length, and allocates
//	nothing.
package algo
