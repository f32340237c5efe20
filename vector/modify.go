// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
)

// PushBack appends value, growing per the growth policy when Len() == Cap(),
// and returns the address of the new element. value is moved in, not cloned.
// On failure the vector is unchanged and value still belongs to the caller.
// Complexity: amortized O(1).
func (v *Vector[T]) PushBack(value T) (*T, error) {
	if v.n == v.Cap() {
		if _, err := v.insertValues("PushBack", v.n, []T{value}); err != nil {
			return nil, err
		}
	} else {
		v.buf.Construct(v.n, value)
		v.n++
	}

	return v.buf.Ptr(v.n - 1), nil
}

// EmplaceBack constructs an element with ctor (Traits.New when ctor is nil)
// and appends it. A failing ctor leaves the vector unchanged.
// Complexity: amortized O(1).
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	value, err := v.construct(ctor)
	if err != nil {
		return nil, vectorErrorf("EmplaceBack", err)
	}
	p, err := v.PushBack(value)
	if err != nil {
		v.traits.DropValue(value)
		return nil, err
	}

	return p, nil
}

// PopBack destroys the last element. Returns ErrEmpty on an empty vector.
// Complexity: O(1).
func (v *Vector[T]) PopBack() error {
	if v.n == 0 {
		return vectorErrorf("PopBack", ErrEmpty)
	}
	v.n--
	v.buf.Destroy(v.n)

	return nil
}

// Clear destroys every element; capacity is unchanged.
// Complexity: O(n).
func (v *Vector[T]) Clear() {
	algo.DestructN(v.buf.At(0), v.n)
	v.n = 0
}

// Insert moves value in before position pos and returns pos.
// pos must be in [0, Len()].
// Complexity: O(Len() - pos), O(n) when reallocating.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if err := v.checkInsert("Insert", pos); err != nil {
		return pos, err
	}

	return v.insertValues("Insert", pos, []T{value})
}

// InsertN inserts count copies of value before pos and returns pos.
// Complexity: O(Len() - pos + count).
func (v *Vector[T]) InsertN(pos, count int, value T) (int, error) {
	if err := v.checkInsert("InsertN", pos); err != nil {
		return pos, err
	}
	if count < 0 {
		return pos, vectorErrorf("InsertN", ErrNegativeCount)
	}
	vals, err := v.cloneN(value, count)
	if err != nil {
		return pos, vectorErrorf("InsertN", err)
	}
	at, err := v.insertValues("InsertN", pos, vals)
	if err != nil {
		v.dropAll(vals)
	}

	return at, err
}

// InsertSlice inserts copies of vals before pos and returns pos.
// Complexity: O(Len() - pos + len(vals)).
func (v *Vector[T]) InsertSlice(pos int, vals []T) (int, error) {
	if err := v.checkInsert("InsertSlice", pos); err != nil {
		return pos, err
	}
	copies, err := v.cloneSlice(vals)
	if err != nil {
		return pos, vectorErrorf("InsertSlice", err)
	}
	at, err := v.insertValues("InsertSlice", pos, copies)
	if err != nil {
		v.dropAll(copies)
	}

	return at, err
}

// InsertRange inserts copies of [first, last) before pos in v and returns pos.
// Complexity: O(Len() - pos + n).
func InsertRange[T any, I algo.Reader[T, I]](v *Vector[T], pos int, first, last I) (int, error) {
	if err := v.checkInsert("InsertRange", pos); err != nil {
		return pos, err
	}
	copies, err := cloneRange(v, first, last)
	if err != nil {
		return pos, vectorErrorf("InsertRange", err)
	}
	at, err := v.insertValues("InsertRange", pos, copies)
	if err != nil {
		v.dropAll(copies)
	}

	return at, err
}

// Emplace constructs an element with ctor (Traits.New when nil) and inserts
// it before pos. Returns pos.
// Complexity: as Insert.
func (v *Vector[T]) Emplace(pos int, ctor func() (T, error)) (int, error) {
	if err := v.checkInsert("Emplace", pos); err != nil {
		return pos, err
	}
	value, err := v.construct(ctor)
	if err != nil {
		return pos, vectorErrorf("Emplace", err)
	}
	at, err := v.insertValues("Emplace", pos, []T{value})
	if err != nil {
		v.traits.DropValue(value)
	}

	return at, err
}

// insertValues moves the already constructed vals into a gap at pos.
// Only reallocation can fail; then the vector is unchanged and vals hold
// their values again.
//
// In place, with tail = n - pos and k = len(vals):
//   - tail > k: the last k elements are relocated into raw slots [n, n+k),
//     the rest of the tail is move-assigned backward, and the gap
//     [pos, pos+k) is assigned;
//   - tail <= k: the whole tail is relocated to [pos+k, n+k), the vacated
//     live slots [pos, n) are assigned and the raw slots [n, pos+k) are
//     constructed.
//
// Either way no live slot is constructed twice.
func (v *Vector[T]) insertValues(method string, pos int, vals []T) (int, error) {
	k := len(vals)
	if k == 0 {
		return pos, nil
	}
	src, srcEnd := algo.SliceBegin(vals), algo.SliceEnd(vals)

	if v.n+k > v.Cap() {
		fill := func(dst memory.Pos[T]) error {
			algo.ConstructMove[T](src, srcEnd, dst)
			return nil
		}
		unfill := func(dst memory.Pos[T]) {
			algo.MoveTo[T](dst, src, srcEnd) // hand the values back to vals
			algo.DestructN(dst, k)
		}
		return pos, v.reallocate(method, v.growCap(v.n+k), pos, k, fill, unfill)
	}

	end := v.buf.At(v.n)
	if tail := v.n - pos; tail > k {
		algo.ConstructMoveN[T](v.buf.At(v.n-k), k, end)
		algo.MoveBackward[T](v.buf.At(pos), v.buf.At(v.n-k), end)
		algo.Move[T](src, srcEnd, v.buf.At(pos))
	} else {
		algo.ConstructMove[T](v.buf.At(pos), end, v.buf.At(pos+k))
		src = algo.MoveTo[T](src, v.buf.At(pos), end)
		algo.ConstructMove[T](src, srcEnd, end)
	}
	v.n += k

	return pos, nil
}

// Erase destroys the element at pos, closes the gap and returns pos, the
// index of the element that followed. pos must be in [0, Len()).
// Complexity: O(Len() - pos).
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.n {
		return pos, rangeErrorf("Erase", pos, v.n)
	}

	return v.eraseRange(pos, pos+1), nil
}

// EraseRange destroys [first, last), closes the gap and returns first.
// Requires 0 <= first <= last <= Len().
// Complexity: O(Len() - first).
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || first > last || last > v.n {
		return first, rangeErrorf("EraseRange", first, v.n)
	}

	return v.eraseRange(first, last), nil
}

// eraseRange move-assigns [last, n) onto [first, ...) (each assignment drops
// the erased value it overwrites) and destroys the vacated trailing slots.
func (v *Vector[T]) eraseRange(first, last int) int {
	k := last - first
	if k == 0 {
		return first
	}
	algo.Move[T](v.buf.At(last), v.buf.At(v.n), v.buf.At(first))
	algo.DestructN(v.buf.At(v.n-k), k)
	v.n -= k

	return first
}

// AssignN replaces the contents with count copies of value.
// On failure the vector is unchanged.
// Complexity: O(Len() + count).
func (v *Vector[T]) AssignN(count int, value T) error {
	if count < 0 {
		return vectorErrorf("AssignN", ErrNegativeCount)
	}
	vals, err := v.cloneN(value, count)
	if err != nil {
		return vectorErrorf("AssignN", err)
	}

	return v.assignValues("AssignN", vals)
}

// AssignSlice replaces the contents with copies of vals.
// Complexity: O(Len() + len(vals)).
func (v *Vector[T]) AssignSlice(vals []T) error {
	copies, err := v.cloneSlice(vals)
	if err != nil {
		return vectorErrorf("AssignSlice", err)
	}

	return v.assignValues("AssignSlice", copies)
}

// AssignRange replaces the contents of v with copies of [first, last).
// Complexity: O(Len() + n).
func AssignRange[T any, I algo.Reader[T, I]](v *Vector[T], first, last I) error {
	copies, err := cloneRange(v, first, last)
	if err != nil {
		return vectorErrorf("AssignRange", err)
	}

	return v.assignValues("AssignRange", copies)
}

// assignValues replaces the contents with the constructed vals. When they do
// not fit, storage of exactly len(vals) slots is allocated first; if that
// fails, vals are dropped and the vector is unchanged.
func (v *Vector[T]) assignValues(method string, vals []T) error {
	src, srcEnd := algo.SliceBegin(vals), algo.SliceEnd(vals)
	if len(vals) > v.Cap() {
		nb, err := v.newBuffer(len(vals))
		if err != nil {
			v.dropAll(vals)
			return vectorErrorf(method, err)
		}
		algo.ConstructMove[T](src, srcEnd, nb.At(0))
		v.destroyStorage()
		v.buf, v.n = nb, len(vals)
		return nil
	}
	algo.DestructN(v.buf.At(0), v.n)
	algo.ConstructMove[T](src, srcEnd, v.buf.At(0))
	v.n = len(vals)

	return nil
}

// checkInsert validates an insertion position.
func (v *Vector[T]) checkInsert(method string, pos int) error {
	if pos < 0 || pos > v.n {
		return rangeErrorf(method, pos, v.n)
	}

	return nil
}

// construct runs ctor, or Traits.New when ctor is nil.
func (v *Vector[T]) construct(ctor func() (T, error)) (T, error) {
	if ctor != nil {
		return ctor()
	}

	return v.traits.MakeValue()
}

// cloneN prepares count copies of value; on failure the copies made so far
// are dropped.
func (v *Vector[T]) cloneN(value T, count int) ([]T, error) {
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		c, err := v.traits.CloneValue(value)
		if err != nil {
			v.dropAll(out)
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// cloneSlice prepares copies of vals.
func (v *Vector[T]) cloneSlice(vals []T) ([]T, error) {
	return cloneRange(v, algo.SliceBegin(vals), algo.SliceEnd(vals))
}

// cloneRange prepares copies of [first, last) with v's Traits.Clone; on
// failure the copies made so far are dropped.
func cloneRange[T any, I algo.Reader[T, I]](v *Vector[T], first, last I) ([]T, error) {
	out := make([]T, 0, algo.Distance(first, last))
	for ; !first.Equal(last); first = first.Next() {
		c, err := v.traits.CloneValue(first.Get())
		if err != nil {
			v.dropAll(out)
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// dropAll ends the lifetime of prepared values that were never inserted.
func (v *Vector[T]) dropAll(vals []T) {
	for _, x := range vals {
		v.traits.DropValue(x)
	}
}
