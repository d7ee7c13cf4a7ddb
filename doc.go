// Package vector implements a growable contiguous array for Go.
//
// # Overview
//
// A Vector owns a single contiguous buffer and manages it explicitly:
// element layout, allocation, growth and teardown. It is useful when you
// need:
//
//   - Predictable growth (capacities 4, 8, 16, ... and nothing else)
//   - Explicit teardown with per-element cleanup
//   - Backing memory outside the Go heap (arena or mmap)
//   - Allocation accounting for tests and monitoring
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	v.Push(1)
//	v.Push(2)
//
//	x, ok := v.Get(1)          // 2, true
//	_, ok = v.Get(10)          // 0, false
//	i, ok := vector.Search(v, 2) // 1, true
//
//	if p, ok := v.GetMut(0); ok {
//	    *p = 10
//	}
//
// # Growth
//
// A new vector allocates nothing. The first Push allocates four slots; a
// Push that finds the buffer full doubles it, copying every slot. Capacity
// never shrinks and there is no removal operation. Push is amortized O(1).
//
// Pointers returned by GetMut are invalidated by the next growth.
//
// # Error Handling
//
// Lookups are recoverable: Get, GetMut and Search report absence with a
// boolean. Conditions the vector cannot continue from panic with an error
// wrapping one of the package's sentinel errors:
//
//   - ErrZeroSized: the element type occupies no storage
//   - ErrAllocFailed: the allocator could not provide memory
//   - ErrOverflow: a size or capacity computation overflowed
//   - ErrIndexOutOfRange: At or Set past Len()
//   - ErrReleased: Push or Clone after Release
//
// A panicking operation leaves Len and Cap unchanged.
//
// # Allocators
//
// By default the buffer is a typed Go heap allocation and any element type
// is accepted. WithAllocator moves the buffer into raw memory:
//
//	arena := vector.NewArenaAllocator(0)
//	v := vector.New[float64](vector.WithAllocator(arena))
//
// Raw memory is not scanned by the garbage collector, so only pointer-free
// element types may use it. GoAllocator, ArenaAllocator, MmapAllocator and
// CountingAllocator are provided.
//
// # Teardown
//
// Release runs Finalize (for element types implementing Finalizer) and the
// WithFinalizer hook on each live element, then frees the buffer once.
// Unused slots are never finalized.
//
// # Thread Safety
//
// Vector is not thread-safe. SafeVector wraps it with a mutex and exposes
// in-place mutation only through callbacks run under the lock:
//
//	s := vector.NewSafeVector[int]()
//	s.Push(3)
//	s.Update(0, func(p *int) { *p *= 2 })
package vector
