package vector

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocatorAlignment(t *testing.T) {
	a := NewGoAllocator()

	for _, align := range []uintptr{1, 2, 4, 8, 16, 64, 4096} {
		b, err := a.Allocate(Layout{Size: 100, Align: align})
		require.NoError(t, err)
		assert.Len(t, b, 100)
		assert.Equal(t, 100, cap(b), "capacity clipped to the request")
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		assert.Zero(t, addr%align, "align %d", align)
	}

	_, err := a.Allocate(Layout{Size: 8, Align: 6})
	assert.ErrorIs(t, err, ErrBadAlign)
}

func TestGoAllocatorReallocate(t *testing.T) {
	a := NewGoAllocator()
	l := Layout{Size: 4, Align: 4}

	b, err := a.Allocate(l)
	require.NoError(t, err)
	copy(b, []byte{1, 2, 3, 4})

	nb, err := a.Reallocate(b, l, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, nb)

	same, err := a.Reallocate(nb, Layout{Size: 8, Align: 4}, 8)
	require.NoError(t, err)
	assert.Same(t, unsafe.SliceData(nb), unsafe.SliceData(same))

	assert.NoError(t, a.Free(nb, Layout{Size: 8, Align: 4}))
}

func TestCountingAllocator(t *testing.T) {
	c := NewCountingAllocator(NewGoAllocator())
	l := Layout{Size: 16, Align: 8}

	b, err := c.Allocate(l)
	require.NoError(t, err)
	b, err = c.Reallocate(b, l, 64)
	require.NoError(t, err)
	b, err = c.Reallocate(b, Layout{Size: 64, Align: 8}, 32)
	require.NoError(t, err)
	require.NoError(t, c.Free(b, Layout{Size: 32, Align: 8}))

	assert.Equal(t, AllocatorStats{
		Allocs:    1,
		Reallocs:  2,
		Frees:     1,
		LiveBytes: 0,
		PeakBytes: 64,
	}, c.Stats())
}

func TestCountingAllocatorFailures(t *testing.T) {
	c := NewCountingAllocator(&failingAllocator{inner: NewGoAllocator()})

	_, err := c.Allocate(Layout{Size: 8, Align: 8})
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, AllocatorStats{Failures: 1}, c.Stats())
}

func TestVectorOnCountingAllocator(t *testing.T) {
	c := NewCountingAllocator(nil)
	v := New[uint32](WithAllocator(c))

	for i := uint32(0); i < 100; i++ {
		v.Push(i)
	}
	for i := 0; i < 100; i++ {
		require.Equal(t, uint32(i), v.At(i))
	}

	stats := c.Stats()
	assert.Equal(t, 1, stats.Allocs)
	assert.Equal(t, 5, stats.Reallocs, "4 -> 128 takes five doublings")
	assert.Equal(t, 128*4, stats.LiveBytes)

	clone := v.Clone()
	assert.Equal(t, 2, c.Stats().Allocs)
	assert.True(t, Equal(v, clone))

	v.Release()
	clone.Release()
	assert.Equal(t, 2, c.Stats().Frees)
	assert.Equal(t, 0, c.Stats().LiveBytes)
}
