// SPDX-License-Identifier: MIT

package algo

// Stepper is the minimal position: it can advance and compare.
type Stepper[I any] interface {
	// Next returns the position that follows this one.
	Next() I

	// Equal reports whether both positions address the same slot.
	Equal(other I) bool
}

// BidiStepper is a Stepper that can also step backward.
type BidiStepper[I any] interface {
	Stepper[I]

	// Prev returns the position that precedes this one.
	Prev() I
}

// Reader is a position whose live element can be read.
type Reader[T, I any] interface {
	Stepper[I]
	Get() T
}

// BidiReader is a Reader that can step backward.
type BidiReader[T, I any] interface {
	BidiStepper[I]
	Get() T
}

// Writer is a position whose live element can be assigned.
type Writer[T, I any] interface {
	Stepper[I]
	Set(v T)
}

// BidiWriter is a Writer that can step backward.
type BidiWriter[T, I any] interface {
	BidiStepper[I]
	Set(v T)
}

// Taker is a position whose live element can be moved out.
// Take returns the element and leaves the zero value behind; the slot stays live.
type Taker[T, I any] interface {
	Stepper[I]
	Take() T
}

// BidiTaker is a Taker that can step backward.
type BidiTaker[T, I any] interface {
	BidiStepper[I]
	Take() T
}

// Destroyer is a position whose live element can be destroyed in place.
type Destroyer[I any] interface {
	Stepper[I]
	Destroy()
}

// Slot is a position into raw storage. Emplace begins the lifetime of a new
// element in the slot; Destroy ends it and leaves raw storage behind.
type Slot[T, I any] interface {
	Stepper[I]
	Emplace(v T)
	Destroy()
}

// BidiSlot is a Slot that can step backward.
type BidiSlot[T, I any] interface {
	BidiStepper[I]
	Emplace(v T)
	Destroy()
}

// Traits describes how elements of type T begin and end their lifetime.
// The zero Traits is valid: zero-value construction, plain assignment for
// copies, bitwise relocation and no destruction hook.
//
// Moving an element out of a slot leaves the zero value in it, and Drop is
// later invoked on that zero value when the slot is destroyed. Drop must
// therefore treat the zero value as owning nothing. Containers also drop the
// value an assignment overwrites.
type Traits[T any] struct {
	// New default-constructs an element. Nil means the zero value.
	New func() (T, error)

	// Clone copy-constructs an element from src. Nil means plain assignment.
	Clone func(src T) (T, error)

	// Relocate, if non-nil, is used instead of a move whenever an element
	// must change storage (vector reallocation). The source stays intact
	// until the whole relocation succeeds, so a failure can be unwound.
	Relocate func(src T) (T, error)

	// Drop ends the lifetime of an element. Nil means nothing to release.
	Drop func(v T)
}

// MakeValue default-constructs one element.
func (t Traits[T]) MakeValue() (T, error) {
	if t.New == nil {
		var zero T
		return zero, nil
	}

	return t.New()
}

// CloneValue copy-constructs one element from src.
func (t Traits[T]) CloneValue(src T) (T, error) {
	if t.Clone == nil {
		return src, nil
	}

	return t.Clone(src)
}

// DropValue ends the lifetime of v.
func (t Traits[T]) DropValue(v T) {
	if t.Drop != nil {
		t.Drop(v)
	}
}

// Distance counts the steps from first to last.
// last must be reachable from first.
// Complexity: O(n).
func Distance[I Stepper[I]](first, last I) int {
	n := 0
	for !first.Equal(last) {
		first = first.Next()
		n++
	}

	return n
}

// Advance steps it forward n times (backward when n is negative).
// Complexity: O(|n|).
func Advance[I BidiStepper[I]](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}

	return it
}
