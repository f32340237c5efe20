// SPDX-License-Identifier: MIT

package algo

// cloneWith copy-constructs v through clone; a nil clone is plain assignment.
func cloneWith[T any](clone func(T) (T, error), v T) (T, error) {
	if clone == nil {
		return v, nil
	}

	return clone(v)
}

// Construct default-constructs an element in every raw slot of
// [dFirst, dLast) using ctor (nil ctor means the zero value).
// On failure the slots constructed so far are destroyed and the error is
// returned together with dFirst.
// Complexity: O(n).
func Construct[T any, O Slot[T, O]](dFirst, dLast O, ctor func() (T, error)) (O, error) {
	cur := dFirst
	for !cur.Equal(dLast) {
		v, err := Traits[T]{New: ctor}.MakeValue()
		if err != nil {
			Destruct(dFirst, cur)
			return dFirst, err
		}
		cur.Emplace(v)
		cur = cur.Next()
	}

	return cur, nil
}

// ConstructN default-constructs n elements starting at dFirst.
// On failure the constructed prefix is destroyed.
// Complexity: O(n).
func ConstructN[T any, O Slot[T, O]](dFirst O, n int, ctor func() (T, error)) (O, error) {
	cur := dFirst
	for i := 0; i < n; i++ {
		v, err := Traits[T]{New: ctor}.MakeValue()
		if err != nil {
			DestructN(dFirst, i)
			return dFirst, err
		}
		cur.Emplace(v)
		cur = cur.Next()
	}

	return cur, nil
}

// ConstructFill copy-constructs v into every raw slot of [dFirst, dLast).
// On failure the constructed prefix is destroyed.
// Complexity: O(n).
func ConstructFill[T any, O Slot[T, O]](dFirst, dLast O, v T, clone func(T) (T, error)) (O, error) {
	cur := dFirst
	for !cur.Equal(dLast) {
		c, err := cloneWith(clone, v)
		if err != nil {
			Destruct(dFirst, cur)
			return dFirst, err
		}
		cur.Emplace(c)
		cur = cur.Next()
	}

	return cur, nil
}

// ConstructFillN copy-constructs v into n raw slots starting at dFirst.
// On failure the constructed prefix is destroyed.
// Complexity: O(n).
func ConstructFillN[T any, O Slot[T, O]](dFirst O, n int, v T, clone func(T) (T, error)) (O, error) {
	cur := dFirst
	for i := 0; i < n; i++ {
		c, err := cloneWith(clone, v)
		if err != nil {
			DestructN(dFirst, i)
			return dFirst, err
		}
		cur.Emplace(c)
		cur = cur.Next()
	}

	return cur, nil
}

// ConstructCopy copy-constructs [first, last) into raw slots starting at
// dFirst, low-to-high, and returns the end of the destination range.
// On failure the constructed prefix is destroyed; the source is untouched.
// Complexity: O(n).
func ConstructCopy[T any, I Reader[T, I], O Slot[T, O]](first, last I, dFirst O, clone func(T) (T, error)) (O, error) {
	cur := dFirst
	for !first.Equal(last) {
		c, err := cloneWith(clone, first.Get())
		if err != nil {
			Destruct(dFirst, cur)
			return dFirst, err
		}
		cur.Emplace(c)
		first, cur = first.Next(), cur.Next()
	}

	return cur, nil
}

// ConstructCopyTo copy-constructs into every raw slot of [dFirst, dLast)
// from the source starting at first and returns the source position after
// the last element read. On failure the constructed prefix is destroyed and
// first is returned with the error.
// Complexity: O(n).
func ConstructCopyTo[T any, I Reader[T, I], O Slot[T, O]](first I, dFirst, dLast O, clone func(T) (T, error)) (I, error) {
	src, cur := first, dFirst
	for !cur.Equal(dLast) {
		c, err := cloneWith(clone, src.Get())
		if err != nil {
			Destruct(dFirst, cur)
			return first, err
		}
		cur.Emplace(c)
		src, cur = src.Next(), cur.Next()
	}

	return src, nil
}

// ConstructCopyN copy-constructs n elements starting at first into raw
// slots starting at dFirst.
// Complexity: O(n).
func ConstructCopyN[T any, I Reader[T, I], O Slot[T, O]](first I, n int, dFirst O, clone func(T) (T, error)) (O, error) {
	cur := dFirst
	for i := 0; i < n; i++ {
		c, err := cloneWith(clone, first.Get())
		if err != nil {
			DestructN(dFirst, i)
			return dFirst, err
		}
		cur.Emplace(c)
		first, cur = first.Next(), cur.Next()
	}

	return cur, nil
}

// ConstructCopyBackward copy-constructs [first, last) into the raw range
// ending at dLast, high-to-low, and returns the start of the destination.
// On failure the constructed suffix [start, dLast) is destroyed.
// Complexity: O(n).
func ConstructCopyBackward[T any, I BidiReader[T, I], O BidiSlot[T, O]](first, last I, dLast O, clone func(T) (T, error)) (O, error) {
	cur := dLast
	for !last.Equal(first) {
		last = last.Prev()
		c, err := cloneWith(clone, last.Get())
		if err != nil {
			Destruct(cur, dLast)
			return dLast, err
		}
		cur = cur.Prev()
		cur.Emplace(c)
	}

	return cur, nil
}

// ConstructCopyBackwardN copy-constructs the n elements ending at last into
// the raw range ending at dLast, high-to-low, and returns the start of the
// destination. On failure the constructed suffix is destroyed.
// Complexity: O(n).
func ConstructCopyBackwardN[T any, I BidiReader[T, I], O BidiSlot[T, O]](last I, n int, dLast O, clone func(T) (T, error)) (O, error) {
	cur := dLast
	for i := 0; i < n; i++ {
		last = last.Prev()
		c, err := cloneWith(clone, last.Get())
		if err != nil {
			Destruct(cur, dLast)
			return dLast, err
		}
		cur = cur.Prev()
		cur.Emplace(c)
	}

	return cur, nil
}

// ConstructCopyBackwardTo copy-constructs into every raw slot of
// [dFirst, dLast), high-to-low, from the source ending at last, and returns
// the source position of the last element read. On failure the constructed
// suffix is destroyed and last is returned with the error.
// Complexity: O(n).
func ConstructCopyBackwardTo[T any, I BidiReader[T, I], O BidiSlot[T, O]](last I, dFirst, dLast O, clone func(T) (T, error)) (I, error) {
	src, cur := last, dLast
	for !cur.Equal(dFirst) {
		src = src.Prev()
		c, err := cloneWith(clone, src.Get())
		if err != nil {
			Destruct(cur, dLast)
			return last, err
		}
		cur = cur.Prev()
		cur.Emplace(c)
	}

	return src, nil
}

// ConstructMove relocates [first, last) into raw slots starting at dFirst,
// low-to-high. Each source slot is left holding the zero value and stays
// live; the caller destroys it. Relocation cannot fail.
// Complexity: O(n).
func ConstructMove[T any, I Taker[T, I], O Slot[T, O]](first, last I, dFirst O) O {
	for !first.Equal(last) {
		dFirst.Emplace(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// ConstructMoveTo relocates into every raw slot of [dFirst, dLast) from the
// source starting at first and returns the source position after the last
// element moved.
// Complexity: O(n).
func ConstructMoveTo[T any, I Taker[T, I], O Slot[T, O]](first I, dFirst, dLast O) I {
	for !dFirst.Equal(dLast) {
		dFirst.Emplace(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return first
}

// ConstructMoveN relocates n elements starting at first into dFirst.
// Complexity: O(n).
func ConstructMoveN[T any, I Taker[T, I], O Slot[T, O]](first I, n int, dFirst O) O {
	for ; n > 0; n-- {
		dFirst.Emplace(first.Take())
		first, dFirst = first.Next(), dFirst.Next()
	}

	return dFirst
}

// ConstructMoveBackward relocates [first, last) into the raw range ending at
// dLast, high-to-low, and returns the start of the destination range.
// Complexity: O(n).
func ConstructMoveBackward[T any, I BidiTaker[T, I], O BidiSlot[T, O]](first, last I, dLast O) O {
	for !last.Equal(first) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Emplace(last.Take())
	}

	return dLast
}

// ConstructMoveBackwardTo relocates into every raw slot of [dFirst, dLast),
// high-to-low, from the source ending at last, and returns the source
// position of the last element moved.
// Complexity: O(n).
func ConstructMoveBackwardTo[T any, I BidiTaker[T, I], O BidiSlot[T, O]](last I, dFirst, dLast O) I {
	for !dLast.Equal(dFirst) {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Emplace(last.Take())
	}

	return last
}

// ConstructMoveBackwardN relocates the n elements ending at last into the
// raw range ending at dLast, high-to-low.
// Complexity: O(n).
func ConstructMoveBackwardN[T any, I BidiTaker[T, I], O BidiSlot[T, O]](last I, n int, dLast O) O {
	for ; n > 0; n-- {
		last, dLast = last.Prev(), dLast.Prev()
		dLast.Emplace(last.Take())
	}

	return dLast
}

// Destruct ends the lifetime of every element in [first, last) without
// releasing the storage, and returns last.
// Complexity: O(n).
func Destruct[I Destroyer[I]](first, last I) I {
	for !first.Equal(last) {
		first.Destroy()
		first = first.Next()
	}

	return first
}

// DestructN ends the lifetime of n elements starting at first.
// Complexity: O(n).
func DestructN[I Destroyer[I]](first I, n int) I {
	for ; n > 0; n-- {
		first.Destroy()
		first = first.Next()
	}

	return first
}
