// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
	"github.com/katalvlaran/nstd/vector"
)

func TestPushBack_OrderAndGrowth(t *testing.T) {
	tr := memory.NewTracker()
	v := vector.New(vector.WithAllocator[int](tr))

	var caps []int
	prev := 0
	for i := 1; i <= 9; i++ {
		p, err := v.PushBack(i * 10)
		require.NoError(t, err)
		require.Equal(t, i*10, *p, "PushBack returns the new element")
		require.Equal(t, i, v.Len())
		require.GreaterOrEqual(t, v.Cap(), v.Len())
		require.GreaterOrEqual(t, v.Cap(), prev, "capacity never shrinks while pushing")
		if v.Cap() != prev {
			caps = append(caps, v.Cap())
			prev = v.Cap()
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16}, caps)

	for i := 0; i < v.Len(); i++ {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, (i+1)*10, got)
	}

	v.Release()
	assert.Equal(t, 5, tr.Stats().Frees, "every superseded block returned")
	require.NoError(t, tr.Check())
}

func TestZeroValueVector(t *testing.T) {
	var v vector.Vector[string]
	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.Data())

	_, err := v.PushBack("x")
	require.NoError(t, err)
	assert.Equal(t, "[x]", v.String())
	v.Release()
	v.Release()
}

func TestNewN_NewFilled(t *testing.T) {
	tr := memory.NewTracker()

	v, err := vector.NewN[int](3, vector.WithAllocator[int](tr))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, v.Data())
	assert.Equal(t, 3, v.Cap())

	w, err := vector.NewFilled(3, 7, vector.WithAllocator[int](tr))
	require.NoError(t, err)
	require.NoError(t, w.Resize(5))
	requireInts(t, []int{7, 7, 7, 0, 0}, w.Data())
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, 6, w.Cap(), "max(2*3, 5)")

	_, err = vector.NewN[int](-1)
	require.ErrorIs(t, err, vector.ErrNegativeCount)

	v.Release()
	w.Release()
	require.NoError(t, tr.Check())
}

func TestFromRange(t *testing.T) {
	tr := memory.NewTracker()
	src := intVector(t, tr, 1, 2, 3, 4)

	v, err := vector.FromRange[int](src.Begin().Add(1), src.End())
	require.NoError(t, err)
	requireInts(t, []int{2, 3, 4}, v.Data())
	assert.Equal(t, 3, v.Cap())

	src.Release()
	require.NoError(t, tr.Check())
}

func TestCheckedAccess(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 2, 3)

	_, err := v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(3, 0), vector.ErrOutOfRange)

	require.NoError(t, v.Set(1, 20))
	assert.Equal(t, 20, v.Index(1))
	*v.Ref(2) = 30
	front, err := v.Front()
	require.NoError(t, err)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	assert.Equal(t, 30, back)
	assert.Equal(t, "Vector.At(3) with length 3: vector: index out of range", func() string {
		_, err := v.At(3)
		return err.Error()
	}())

	v.Clear()
	_, err = v.Front()
	require.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Back()
	require.ErrorIs(t, err, vector.ErrEmpty)
	require.ErrorIs(t, v.PopBack(), vector.ErrEmpty)

	v.Release()
	require.NoError(t, tr.Check())
}

func TestInsert_ShiftsTail(t *testing.T) {
	cases := []struct {
		name  string
		start []int
		pos   int
		vals  []int
		want  []int
	}{
		{"front, tail longer than gap", []int{1, 2, 3, 4}, 0, []int{9}, []int{9, 1, 2, 3, 4}},
		{"middle, tail longer than gap", []int{1, 2, 3, 4, 5}, 1, []int{8, 9}, []int{1, 8, 9, 2, 3, 4, 5}},
		{"middle, tail shorter than gap", []int{1, 2, 3}, 2, []int{7, 8, 9}, []int{1, 2, 7, 8, 9, 3}},
		{"tail equal to gap", []int{1, 2, 3, 4}, 2, []int{7, 8}, []int{1, 2, 7, 8, 3, 4}},
		{"append", []int{1, 2}, 2, []int{3, 4}, []int{1, 2, 3, 4}},
		{"into empty", nil, 0, []int{5}, []int{5}},
		{"nothing", []int{1}, 0, nil, []int{1}},
	}
	for _, tc := range cases {
		for _, reserve := range []bool{false, true} {
			name := tc.name
			if reserve {
				name += " (in place)"
			}
			t.Run(name, func(t *testing.T) {
				tr := memory.NewTracker()
				l := newLedger(t)
				v := objVector(t, tr, l, false, tc.start...)
				if reserve {
					require.NoError(t, v.Reserve(len(tc.start)+len(tc.vals)))
				}
				capBefore := v.Cap()

				src := make([]*obj, len(tc.vals))
				for i, x := range tc.vals {
					src[i] = l.make(x)
				}
				at, err := v.InsertSlice(tc.pos, src)
				require.NoError(t, err)
				assert.Equal(t, tc.pos, at)
				requireInts(t, tc.want, objVals(v))
				if reserve {
					assert.Equal(t, capBefore, v.Cap(), "no reallocation when capacity suffices")
				}

				assert.Len(t, l.live, len(tc.want)+len(tc.vals), "vector holds clones, src keeps originals")
				for _, o := range src {
					l.traits(false).Drop(o)
				}
				v.Release()
				assert.Empty(t, l.live)
				require.NoError(t, tr.Check())
			})
		}
	}
}

func TestInsert_SingleAndN(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 2, 3)

	at, err := v.Insert(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, at)
	requireInts(t, []int{1, 5, 2, 3}, v.Data())

	at, err = v.InsertN(4, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, at)
	requireInts(t, []int{1, 5, 2, 3, 0, 0}, v.Data())

	_, err = v.Insert(7, 1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.Insert(-1, 1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.InsertN(0, -2, 1)
	require.ErrorIs(t, err, vector.ErrNegativeCount)

	v.Release()
	require.NoError(t, tr.Check())
}

func TestInsertRange_FromIterators(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 5)
	src := []int{2, 3, 4}

	at, err := vector.InsertRange(v, 1, algo.SliceBegin(src), algo.SliceEnd(src))
	require.NoError(t, err)
	assert.Equal(t, 1, at)
	requireInts(t, []int{1, 2, 3, 4, 5}, v.Data())

	v.Release()
	require.NoError(t, tr.Check())
}

func TestEmplace(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 3)

	_, err := v.Emplace(1, func() (int, error) { return 2, nil })
	require.NoError(t, err)
	p, err := v.EmplaceBack(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, *p)
	requireInts(t, []int{1, 2, 3, 0}, v.Data())

	_, err = v.Emplace(1, func() (int, error) { return 0, errHook })
	require.ErrorIs(t, err, errHook)
	_, err = v.EmplaceBack(func() (int, error) { return 0, errHook })
	require.ErrorIs(t, err, errHook)
	requireInts(t, []int{1, 2, 3, 0}, v.Data())

	v.Release()
	require.NoError(t, tr.Check())
}

func TestErase(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr)
	for i := 1; i <= 5; i++ {
		_, err := v.PushBack(i)
		require.NoError(t, err)
	}

	next, err := v.EraseRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	requireInts(t, []int{1, 4, 5}, v.Data())
	assert.Equal(t, 3, v.Len())

	next, err = v.Erase(2)
	require.NoError(t, err)
	assert.Equal(t, 2, next, "erasing the last element returns the end index")
	requireInts(t, []int{1, 4}, v.Data())

	_, err = v.Erase(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.EraseRange(1, 0)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.EraseRange(0, 3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	next, err = v.EraseRange(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, 8, v.Cap(), "erase keeps capacity")

	v.Release()
	require.NoError(t, tr.Check())
}

func TestErase_DropsEachErasedOnce(t *testing.T) {
	cases := []struct {
		name        string
		first, last int
		want        []int
	}{
		{"head", 0, 1, []int{2, 3, 4, 5, 6}},
		{"long range, short tail", 1, 5, []int{1, 6}},
		{"short range, long tail", 1, 2, []int{1, 3, 4, 5, 6}},
		{"suffix", 3, 6, []int{1, 2, 3}},
		{"all", 0, 6, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := memory.NewTracker()
			l := newLedger(t)
			v := objVector(t, tr, l, false, 1, 2, 3, 4, 5, 6)

			_, err := v.EraseRange(tc.first, tc.last)
			require.NoError(t, err)
			requireInts(t, tc.want, objVals(v))
			assert.Len(t, l.live, len(tc.want), "erased elements dropped, survivors kept")

			v.Release()
			assert.Empty(t, l.live)
			require.NoError(t, tr.Check())
		})
	}
}

func TestPopBack_Clear_Resize(t *testing.T) {
	tr := memory.NewTracker()
	l := newLedger(t)
	v := objVector(t, tr, l, false, 1, 2, 3, 4)

	require.NoError(t, v.PopBack())
	requireInts(t, []int{1, 2, 3}, objVals(v))
	assert.Len(t, l.live, 3)

	require.NoError(t, v.Resize(1))
	assert.Equal(t, 4, v.Cap(), "shrinking resize keeps capacity")
	assert.Len(t, l.live, 1)

	require.NoError(t, v.ResizeWith(3, l.make(9)))
	requireInts(t, []int{1, 9, 9}, objVals(v))

	require.NoError(t, v.Resize(6))
	requireInts(t, []int{1, 9, 9, 0, 0, 0}, objVals(v))
	assert.Equal(t, 8, v.Cap())

	require.ErrorIs(t, v.Resize(-1), vector.ErrNegativeCount)

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 8, v.Cap())
	assert.Len(t, l.live, 1, "only the ResizeWith prototype remains")

	v.Release()
	require.NoError(t, tr.Check())
}

func TestReserve_ShrinkToFit(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 2, 3)

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 10, v.Cap())
	require.NoError(t, v.Reserve(5))
	assert.Equal(t, 10, v.Cap(), "Reserve never shrinks")
	requireInts(t, []int{1, 2, 3}, v.Data())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	requireInts(t, []int{1, 2, 3}, v.Data())

	v.Clear()
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, tr.Stats().LiveBlocks)
	require.NoError(t, tr.Check())
}

func TestAssign(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 2, 3)

	require.NoError(t, v.AssignN(2, 8))
	requireInts(t, []int{8, 8}, v.Data())
	assert.Equal(t, 3, v.Cap())

	require.NoError(t, v.AssignSlice([]int{4, 5, 6, 7}))
	requireInts(t, []int{4, 5, 6, 7}, v.Data())
	assert.Equal(t, 4, v.Cap(), "assign allocates exactly what it needs")

	src := []int{1}
	require.NoError(t, vector.AssignRange(v, algo.SliceBegin(src), algo.SliceEnd(src)))
	requireInts(t, []int{1}, v.Data())

	require.ErrorIs(t, v.AssignN(-1, 0), vector.ErrNegativeCount)

	v.Release()
	require.NoError(t, tr.Check())
}

func TestCloneCopyFrom(t *testing.T) {
	tr := memory.NewTracker()
	l := newLedger(t)
	v := objVector(t, tr, l, false, 1, 2, 3)
	require.NoError(t, v.Reserve(16))

	c, err := v.Clone()
	require.NoError(t, err)
	requireInts(t, []int{1, 2, 3}, objVals(c))
	assert.Equal(t, 3, c.Cap(), "clone does not preserve slack")
	assert.NotSame(t, v.Index(0), c.Index(0), "elements are cloned")

	w := objVector(t, tr, l, false, 9)
	require.NoError(t, w.CopyFrom(v))
	requireInts(t, []int{1, 2, 3}, objVals(w))
	require.NoError(t, w.CopyFrom(w))
	assert.Len(t, l.live, 9)

	v.Release()
	c.Release()
	w.Release()
	assert.Empty(t, l.live)
	require.NoError(t, tr.Check())
}

func TestMoveSwap(t *testing.T) {
	tr := memory.NewTracker()
	a := intVector(t, tr, 1, 2, 3)
	capA := a.Cap()

	b := a.Move()
	requireInts(t, []int{1, 2, 3}, b.Data())
	assert.Equal(t, capA, b.Cap())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	a.Release()

	c := intVector(t, tr, 7)
	c.MoveFrom(b)
	requireInts(t, []int{1, 2, 3}, c.Data())
	assert.Equal(t, 0, b.Cap())
	c.MoveFrom(c)
	assert.Equal(t, 3, c.Len())

	d := intVector(t, tr, 4)
	c.Swap(d)
	requireInts(t, []int{4}, c.Data())
	requireInts(t, []int{1, 2, 3}, d.Data())

	_, err := a.PushBack(5)
	require.NoError(t, err, "a moved-from vector stays usable")

	for _, v := range []*vector.Vector[int]{a, b, c, d} {
		v.Release()
	}
	require.NoError(t, tr.Check())
}

func TestIterationAndIterators(t *testing.T) {
	tr := memory.NewTracker()
	v := intVector(t, tr, 1, 2, 3)

	var back []int
	for i, x := range v.Backward() {
		assert.Equal(t, x, v.Index(i))
		back = append(back, x)
	}
	assert.Equal(t, []int{3, 2, 1}, back)

	var vals []int
	for x := range v.Values() {
		vals = append(vals, x)
		if x == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, vals)

	assert.Equal(t, 3, v.End().Sub(v.Begin()))
	assert.Equal(t, 3, algo.Distance(v.Begin(), v.End()))
	it := v.Begin().Add(2)
	assert.Equal(t, 3, it.Get())
	assert.Equal(t, 2, it.Prev().Get())
	*it.Ptr() = 30
	it.Prev().Set(20)
	assert.Equal(t, []int{1, 20, 30}, v.Data())

	src := []int{7, 8}
	algo.Copy[int](algo.SliceBegin(src), algo.SliceEnd(src), v.Begin())
	assert.Equal(t, []int{7, 8, 30}, v.Data())

	v.Release()
	require.NoError(t, tr.Check())
}

func TestCompare(t *testing.T) {
	tr := memory.NewTracker()
	x := intVector(t, tr, 1, 2, 3)
	y := intVector(t, tr, 1, 2, 3)
	z := intVector(t, tr, 1, 2)
	w := intVector(t, tr, 1, 3)

	assert.True(t, vector.Equal(x, y))
	assert.False(t, vector.Equal(x, z))
	assert.True(t, vector.EqualFunc(x, y, func(a, b int) bool { return a == b }))
	assert.False(t, vector.EqualFunc(x, w, func(a, b int) bool { return a == b }))

	assert.True(t, vector.Less(z, x), "strict prefix orders first")
	assert.False(t, vector.Less(x, y))
	assert.True(t, vector.Less(x, w))
	assert.True(t, vector.LessFunc(w, x, func(a, b int) bool { return a > b }))

	assert.Equal(t, 0, vector.Compare(x, y))
	assert.Equal(t, 1, vector.Compare(x, z))
	assert.Equal(t, -1, vector.Compare(x, w))

	for _, v := range []*vector.Vector[int]{x, y, z, w} {
		v.Release()
	}
	require.NoError(t, tr.Check())
}
