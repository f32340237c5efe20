// SPDX-License-Identifier: MIT

package algo

// Copy assigns [first, last) into the live range starting at dFirst,
// low-to-high, and returns the end of the destination range.
// Complexity: O(n).
func Copy[T any, I Reader[T, I], O Writer[T, O]](first, last I, dFirst O) O {
	for !first.Equal(last) {
		dFirst.Set(first.Get())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// CopyN assigns n elements starting at first into dFirst and returns the
// end of the destination range. Non-positive n copies nothing.
// Complexity: O(n).
func CopyN[T any, I Reader[T, I], O Writer[T, O]](first I, n int, dFirst O) O {
	for ; n > 0; n-- {
		dFirst.Set(first.Get())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// CopyTo fills the destination [dFirst, dLast) from the source starting at
// first and returns the source position after the last element read.
// Complexity: O(n).
func CopyTo[T any, I Reader[T, I], O Writer[T, O]](first I, dFirst, dLast O) I {
	for !dFirst.Equal(dLast) {
		dFirst.Set(first.Get())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return first
}

// CopyBackward assigns [first, last) into the range ending at dLast,
// high-to-low, and returns the start of the destination range.
// The ranges may overlap when the destination lies ahead of the source.
// Complexity: O(n).
func CopyBackward[T any, I BidiReader[T, I], O BidiWriter[T, O]](first, last I, dLast O) O {
	for !last.Equal(first) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Get())
	}

	return dLast
}

// CopyBackwardN assigns the n elements ending at last into the range ending
// at dLast, high-to-low, and returns the start of the destination range.
// Complexity: O(n).
func CopyBackwardN[T any, I BidiReader[T, I], O BidiWriter[T, O]](last I, n int, dLast O) O {
	for ; n > 0; n-- {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Get())
	}

	return dLast
}

// CopyBackwardTo fills [dFirst, dLast) high-to-low from the source ending at
// last and returns the source position of the last element read.
// Complexity: O(n).
func CopyBackwardTo[T any, I BidiReader[T, I], O BidiWriter[T, O]](last I, dFirst, dLast O) I {
	for !dLast.Equal(dFirst) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Get())
	}

	return last
}

// Move assigns [first, last) into dFirst by moving, low-to-high. Each source
// slot is left holding the zero value. Returns the end of the destination.
// Complexity: O(n).
func Move[T any, I Taker[T, I], O Writer[T, O]](first, last I, dFirst O) O {
	for !first.Equal(last) {
		dFirst.Set(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// MoveN moves n elements starting at first into dFirst.
// Complexity: O(n).
func MoveN[T any, I Taker[T, I], O Writer[T, O]](first I, n int, dFirst O) O {
	for ; n > 0; n-- {
		dFirst.Set(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// MoveTo fills [dFirst, dLast) by moving from first and returns the source
// position after the last element moved.
// Complexity: O(n).
func MoveTo[T any, I Taker[T, I], O Writer[T, O]](first I, dFirst, dLast O) I {
	for !dFirst.Equal(dLast) {
		dFirst.Set(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return first
}

// MoveBackward moves [first, last) into the range ending at dLast,
// high-to-low, and returns the start of the destination range.
// Complexity: O(n).
func MoveBackward[T any, I BidiTaker[T, I], O BidiWriter[T, O]](first, last I, dLast O) O {
	for !last.Equal(first) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Take())
	}

	return dLast
}

// MoveBackwardN moves the n elements ending at last into the range ending at
// dLast, high-to-low.
// Complexity: O(n).
func MoveBackwardN[T any, I BidiTaker[T, I], O BidiWriter[T, O]](last I, n int, dLast O) O {
	for ; n > 0; n-- {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Take())
	}

	return dLast
}

// MoveBackwardTo fills [dFirst, dLast) high-to-low by moving from the source
// ending at last and returns the source position of the last element moved.
// Complexity: O(n).
func MoveBackwardTo[T any, I BidiTaker[T, I], O BidiWriter[T, O]](last I, dFirst, dLast O) I {
	for !dLast.Equal(dFirst) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Set(last.Take())
	}

	return last
}

// Fill assigns v to every position in [dFirst, dLast) and returns dLast.
// Complexity: O(n).
func Fill[T any, O Writer[T, O]](dFirst, dLast O, v T) O {
	for !dFirst.Equal(dLast) {
		dFirst.Set(v)
		dFirst = dFirst.Next()
	}

	return dFirst
}

// FillN assigns v to n positions starting at dFirst and returns the end.
// Complexity: O(n).
func FillN[T any, O Writer[T, O]](dFirst O, n int, v T) O {
	for ; n > 0; n-- {
		dFirst.Set(v)
		dFirst = dFirst.Next()
	}

	return dFirst
}
