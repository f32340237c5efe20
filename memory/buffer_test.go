// SPDX-License-Identifier: MIT

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nstd/memory"
)

func TestNewBuffer_ReservesBytes(t *testing.T) {
	tr := memory.NewTracker()
	b, err := memory.NewBuffer[int64](tr, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 0, b.Live())
	assert.Equal(t, 32, tr.Stats().InUse, "capacity * sizeof(int64)")

	b.Free()
	require.NoError(t, tr.Check())
}

func TestNewBuffer_Errors(t *testing.T) {
	tr := memory.NewTracker(memory.WithLimit(16))

	_, err := memory.NewBuffer[int64](tr, 3, nil)
	require.ErrorIs(t, err, memory.ErrLimitExceeded)

	_, err = memory.NewBuffer[int64](tr, -1, nil)
	require.ErrorIs(t, err, memory.ErrTooLarge)

	_, err = memory.NewBuffer[int64](tr, memory.MaxAllocSize, nil)
	require.ErrorIs(t, err, memory.ErrTooLarge, "byte size overflow is rejected before allocating")

	assert.Equal(t, 0, tr.Stats().LiveBlocks)
	require.NoError(t, tr.Check())
}

func TestBuffer_Lifecycle(t *testing.T) {
	var dropped []string
	b, err := memory.NewBuffer[string](nil, 3, func(s string) { dropped = append(dropped, s) })
	require.NoError(t, err)

	b.Construct(0, "a")
	b.Construct(1, "b")
	assert.Equal(t, 2, b.Live())
	assert.Equal(t, []string{"a", "b"}, b.View(2))

	b.Replace(0, "A")
	assert.Equal(t, []string{"a"}, dropped, "Replace drops the overwritten value")

	v := b.Take(1)
	assert.Equal(t, "b", v)
	assert.Equal(t, "", b.Load(1))
	assert.Equal(t, 2, b.Live(), "Take keeps the slot live")

	b.Store(1, "B")
	assert.Equal(t, []string{"a"}, dropped, "Store does not drop")

	*b.Ptr(1) = "bb"
	assert.Equal(t, "bb", b.Load(1))

	b.Destroy(1)
	b.Destroy(0)
	assert.Equal(t, []string{"a", "bb", "A"}, dropped)
	assert.Equal(t, 0, b.Live())
	b.Free()
}

func TestBuffer_FreeWithLiveSlotsPanics(t *testing.T) {
	b, err := memory.NewBuffer[int](nil, 1, nil)
	require.NoError(t, err)
	b.Construct(0, 1)

	assert.Panics(t, func() { b.Free() })

	b.Destroy(0)
	assert.NotPanics(t, func() { b.Free() })
}

func TestBuffer_NilIsEmpty(t *testing.T) {
	var b *memory.Buffer[int]
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 0, b.Live())
	assert.Nil(t, b.View(0))
	assert.NotPanics(t, func() { b.Free() })
}

func TestPos_Navigation(t *testing.T) {
	b, err := memory.NewBuffer[int](nil, 4, nil)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		b.At(i).Emplace(i * i)
	}

	p := b.At(1)
	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 4, p.Next().Get())
	assert.Equal(t, 0, p.Prev().Get())
	assert.Equal(t, 9, p.Add(2).Get())
	assert.True(t, p.Add(2).Prev().Equal(b.At(2)))

	other, err := memory.NewBuffer[int](nil, 4, nil)
	require.NoError(t, err)
	assert.False(t, b.At(0).Equal(other.At(0)), "positions of different buffers differ")

	p.Set(100)
	assert.Equal(t, 100, *p.Ptr())
	assert.Equal(t, 100, p.Take())

	for i := 0; i < 4; i++ {
		b.At(i).Destroy()
	}
	b.Free()
	other.Free()
}
