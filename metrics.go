package vector

import "fmt"

// BytesInUse returns the number of bytes held by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.length * int(LayoutOf[T]().Size)
}

// BytesReserved returns the size in bytes of the backing buffer.
func (v *Vector[T]) BytesReserved() int {
	return v.capacity * int(LayoutOf[T]().Size)
}

// Utilization returns the ratio of live elements to slots (0.0 to 1.0).
// Returns 0.0 if the vector has no buffer.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(v.capacity)
}

// Grows returns how many times the buffer has been doubled.
func (v *Vector[T]) Grows() int {
	return v.grows
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:           v.length,
		Cap:           v.capacity,
		ElemSize:      int(LayoutOf[T]().Size),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Grows:         v.grows,
		Utilization:   v.Utilization(),
		Allocator:     v.allocatorName(),
	}
}

// allocatorName is "heap" for typed Go heap storage, else the allocator's type.
func (v *Vector[T]) allocatorName() string {
	if v.alloc == nil {
		return "heap"
	}
	return fmt.Sprintf("%T", v.alloc)
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Cap * ElemSize
	Grows         int     // Buffer doublings since the first allocation
	Utilization   float64 // Len / Cap (0.0-1.0)
	Allocator     string  // "heap" or the allocator's type, e.g. "*vector.ArenaAllocator"
}

// SizeInUse returns the number of bytes bumped across all chunks,
// including alignment padding.
func (a *ArenaAllocator) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *ArenaAllocator) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total size in bytes of all chunks.
func (a *ArenaAllocator) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Metrics returns a snapshot of arena statistics.
func (a *ArenaAllocator) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		SizeInUse: a.SizeInUse(),
		Capacity:  a.Capacity(),
		NumChunks: a.NumChunks(),
		ChunkSize: a.chunkSize,
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// ArenaMetrics contains statistical information about an arena allocator.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently bumped
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
