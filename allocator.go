package vector

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Allocator hands out raw byte buffers for a Vector's backing storage.
//
// Memory returned by an Allocator is not scanned by the garbage collector
// for pointers, so vectors built on one only accept pointer-free element
// types (see WithAllocator).
type Allocator interface {
	// Allocate returns a buffer of exactly l.Size bytes aligned to l.Align.
	Allocate(l Layout) ([]byte, error)

	// Reallocate resizes b, previously obtained with layout old, to newSize
	// bytes. The first min(len(b), newSize) bytes are preserved. On success
	// b must no longer be used.
	Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error)

	// Free releases b, previously obtained with layout l.
	Free(b []byte, l Layout) error
}

// GoAllocator allocates byte buffers from the Go heap, padding each request
// so the returned slice honours the requested alignment.
// The zero value is ready to use and safe for concurrent use.
type GoAllocator struct{}

// NewGoAllocator returns a GoAllocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate implements Allocator.
func (a *GoAllocator) Allocate(l Layout) ([]byte, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if l.Size > MaxObjectSize-l.Align {
		return nil, fmt.Errorf("%w: %d bytes", ErrOverflow, l.Size)
	}
	size := int(l.Size)
	buf := make([]byte, size+int(l.Align)-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := int(alignUp(addr, l.Align) - addr)
	return buf[shift : shift+size : shift+size], nil
}

// Reallocate implements Allocator. The Go heap cannot resize in place, so a
// new buffer is allocated and the old one is left to the collector.
func (a *GoAllocator) Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error) {
	if newSize == uintptr(len(b)) {
		return b, nil
	}
	nb, err := a.Allocate(Layout{Size: newSize, Align: old.Align})
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

// Free implements Allocator. It is a no-op.
func (a *GoAllocator) Free([]byte, Layout) error { return nil }

// CountingAllocator decorates another Allocator with call and byte counters.
// It is safe for concurrent use when the wrapped allocator is.
type CountingAllocator struct {
	inner Allocator

	allocs    atomic.Int64
	reallocs  atomic.Int64
	frees     atomic.Int64
	failures  atomic.Int64
	liveBytes atomic.Int64
	peakBytes atomic.Int64
}

// NewCountingAllocator wraps inner. A nil inner uses a GoAllocator.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = NewGoAllocator()
	}
	return &CountingAllocator{inner: inner}
}

// Allocate implements Allocator.
func (c *CountingAllocator) Allocate(l Layout) ([]byte, error) {
	b, err := c.inner.Allocate(l)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.allocs.Add(1)
	c.track(int64(len(b)))
	return b, nil
}

// Reallocate implements Allocator.
func (c *CountingAllocator) Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error) {
	nb, err := c.inner.Reallocate(b, old, newSize)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.reallocs.Add(1)
	c.track(int64(len(nb)) - int64(len(b)))
	return nb, nil
}

// Free implements Allocator.
func (c *CountingAllocator) Free(b []byte, l Layout) error {
	if err := c.inner.Free(b, l); err != nil {
		c.failures.Add(1)
		return err
	}
	c.frees.Add(1)
	c.track(-int64(len(b)))
	return nil
}

func (c *CountingAllocator) track(delta int64) {
	live := c.liveBytes.Add(delta)
	for {
		peak := c.peakBytes.Load()
		if live <= peak || c.peakBytes.CompareAndSwap(peak, live) {
			return
		}
	}
}

// Stats returns a snapshot of the counters.
func (c *CountingAllocator) Stats() AllocatorStats {
	return AllocatorStats{
		Allocs:    int(c.allocs.Load()),
		Reallocs:  int(c.reallocs.Load()),
		Frees:     int(c.frees.Load()),
		Failures:  int(c.failures.Load()),
		LiveBytes: int(c.liveBytes.Load()),
		PeakBytes: int(c.peakBytes.Load()),
	}
}

// AllocatorStats contains the counters of a CountingAllocator.
type AllocatorStats struct {
	Allocs    int // Successful Allocate calls
	Reallocs  int // Successful Reallocate calls
	Frees     int // Successful Free calls
	Failures  int // Calls that returned an error
	LiveBytes int // Bytes allocated and not yet freed
	PeakBytes int // High-water mark of LiveBytes
}
