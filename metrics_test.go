package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int32]()
	assert.Equal(t, Metrics{ElemSize: 4, Allocator: "heap"}, v.Metrics())
	assert.Zero(t, v.Utilization())

	for i := int32(0); i < 5; i++ {
		v.Push(i)
	}

	assert.Equal(t, Metrics{
		Len:           5,
		Cap:           8,
		ElemSize:      4,
		BytesInUse:    20,
		BytesReserved: 32,
		Grows:         1,
		Utilization:   0.625,
		Allocator:     "heap",
	}, v.Metrics())
}

func TestVectorMetricsAllocatorName(t *testing.T) {
	a := NewArenaAllocator(0)
	defer a.Release()

	v := New[int32](WithAllocator(a))
	assert.Equal(t, "*vector.ArenaAllocator", v.Metrics().Allocator)

	c := NewCountingAllocator(nil)
	assert.Equal(t, "*vector.CountingAllocator", New[int32](WithAllocator(c)).Metrics().Allocator)
}

func TestVectorMetricsAfterRelease(t *testing.T) {
	v := From([]int64{1, 2, 3, 4, 5})
	v.Release()

	m := v.Metrics()
	assert.Zero(t, m.Len)
	assert.Zero(t, m.Cap)
	assert.Zero(t, m.BytesReserved)
	assert.Zero(t, m.Utilization)
}

func TestArenaMetrics(t *testing.T) {
	a := NewArenaAllocator(1024)
	_, _ = a.Allocate(Layout{Size: 512, Align: 8})

	m := a.Metrics()
	assert.Equal(t, 512, m.SizeInUse)
	assert.Equal(t, 1024, m.Capacity)
	assert.Equal(t, 1, m.NumChunks)
	assert.Equal(t, 1024, m.ChunkSize)
	assert.InDelta(t, 0.5, m.Utilization, 1e-9)

	a.Release()
	assert.Equal(t, ArenaMetrics{ChunkSize: 1024}, a.Metrics())
}

func BenchmarkMetrics(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1000; i++ {
		v.Push(i)
	}

	b.Run("Metrics", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Metrics()
		}
	})

	b.Run("Utilization", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Utilization()
		}
	})
}
