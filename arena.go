package vector

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arena allocators (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is a single memory region within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // bump offset within buf
	last   uintptr // start of the most recent allocation, for in-place growth
}

// ArenaAllocator is a chunked bump allocator. Buffers are carved out of large
// chunks; Free only reclaims the most recent allocation and everything else
// is dropped in bulk by Reset or Release. Not goroutine-safe.
//
// Growing the most recent allocation extends it in place when its chunk has
// room, which makes an arena a good fit for a single growing vector.
type ArenaAllocator struct {
	chunks    []chunk
	chunkSize int
	cur       int // index of the chunk being bumped
}

// NewArenaAllocator creates an ArenaAllocator with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArenaAllocator(chunkSize int) *ArenaAllocator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &ArenaAllocator{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate implements Allocator.
func (a *ArenaAllocator) Allocate(l Layout) ([]byte, error) {
	if a.chunks == nil {
		return nil, fmt.Errorf("%w: arena: %w", ErrAllocFailed, ErrReleased)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	if l.Size > MaxObjectSize-l.Align {
		return nil, fmt.Errorf("%w: %d bytes", ErrOverflow, l.Size)
	}

	// Fast path: bump within the current chunk
	if b, ok := a.chunks[a.cur].bump(l); ok {
		return b, nil
	}

	// Chunks past the current one are empty after a Reset
	for i := a.cur + 1; i < len(a.chunks); i++ {
		if b, ok := a.chunks[i].bump(l); ok {
			a.cur = i
			return b, nil
		}
	}

	// Slow path: a fresh chunk large enough for the request and its padding
	a.grow(int(l.Size + l.Align - 1))
	b, _ := a.chunks[a.cur].bump(l)
	return b, nil
}

// Reallocate implements Allocator. The most recent allocation grows in place
// when the chunk has room; otherwise a new region is bumped and b is copied.
func (a *ArenaAllocator) Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error) {
	if a.chunks == nil {
		return nil, fmt.Errorf("%w: arena: %w", ErrAllocFailed, ErrReleased)
	}
	if c := &a.chunks[a.cur]; c.isLast(b) && c.last+newSize <= uintptr(len(c.buf)) {
		c.offset = c.last + newSize
		return unsafe.Slice(&c.buf[c.last], newSize), nil
	}
	nb, err := a.Allocate(Layout{Size: newSize, Align: old.Align})
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

// Free implements Allocator. Only the most recent allocation is reclaimed.
func (a *ArenaAllocator) Free(b []byte, _ Layout) error {
	if a.chunks == nil {
		return nil
	}
	if c := &a.chunks[a.cur]; c.isLast(b) {
		c.offset = c.last
	}
	return nil
}

// Reset rewinds every chunk but keeps them for reuse.
// Buffers handed out before Reset must no longer be used.
func (a *ArenaAllocator) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
		a.chunks[i].last = 0
	}
	a.cur = 0
}

// Release drops all chunks and makes the arena unusable.
// Subsequent Reset calls panic; allocations fail with ErrReleased.
func (a *ArenaAllocator) Release() {
	a.chunks = nil
	a.cur = 0
}

// grow appends a new chunk of at least min bytes and makes it current.
func (a *ArenaAllocator) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.cur = len(a.chunks) - 1
}

func (a *ArenaAllocator) panicIfReleased() {
	if a.chunks == nil {
		panic(ErrReleased)
	}
}

// bump carves an aligned region of l.Size bytes from c.
func (c *chunk) bump(l Layout) ([]byte, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base+c.offset, l.Align) - base
	if off+l.Size > uintptr(len(c.buf)) {
		return nil, false
	}
	c.last = off
	c.offset = off + l.Size
	if l.Size == 0 {
		return c.buf[off:off:off], true
	}
	return unsafe.Slice(&c.buf[off], l.Size), true
}

// isLast reports whether b is the most recent allocation in c.
func (c *chunk) isLast(b []byte) bool {
	if len(b) == 0 || c.offset == c.last {
		return false
	}
	return unsafe.SliceData(b) == &c.buf[c.last] && c.last+uintptr(len(b)) == c.offset
}
