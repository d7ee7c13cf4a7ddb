package vector

import (
	"errors"
	"fmt"
	"unsafe"
)

// buffer is a vector's backing block. ptr addresses slot 0; raw is the byte
// slice an Allocator returned and must be handed back to it. With the
// default typed heap storage raw is nil and ptr alone keeps the block alive.
type buffer struct {
	ptr unsafe.Pointer
	raw []byte
}

// allocSlots obtains a block of n slots of layout l from a, or from the
// typed Go heap when a is nil.
func allocSlots[T any](a Allocator, l Layout, n int) (buffer, error) {
	al, err := l.Array(n)
	if err != nil {
		return buffer{}, err
	}
	if a == nil {
		s := make([]T, n)
		return buffer{ptr: unsafe.Pointer(unsafe.SliceData(s))}, nil
	}
	b, err := a.Allocate(al)
	if err != nil {
		return buffer{}, allocErr("allocate", n, err)
	}
	return rawBuffer(b, al, n)
}

// growSlots moves buf from oldCap to newCap slots, preserving every byte of
// the old block, initialized or not.
func growSlots[T any](a Allocator, l Layout, buf buffer, oldCap, newCap int) (buffer, error) {
	ol, err := l.Array(oldCap)
	if err != nil {
		return buffer{}, err
	}
	nl, err := l.Array(newCap)
	if err != nil {
		return buffer{}, err
	}
	if a == nil {
		s := make([]T, newCap)
		copy(s, unsafe.Slice((*T)(buf.ptr), oldCap))
		return buffer{ptr: unsafe.Pointer(unsafe.SliceData(s))}, nil
	}
	b, err := a.Reallocate(buf.raw, ol, nl.Size)
	if err != nil {
		return buffer{}, allocErr("grow to", newCap, err)
	}
	return rawBuffer(b, nl, newCap)
}

// freeSlots releases a block of n slots. Typed heap blocks are cleared so
// the collector can reclaim whatever the slots referenced.
func freeSlots[T any](a Allocator, l Layout, buf buffer, n int) error {
	if a == nil {
		clear(unsafe.Slice((*T)(buf.ptr), n))
		return nil
	}
	al, err := l.Array(n)
	if err != nil {
		return err
	}
	return a.Free(buf.raw, al)
}

// rawBuffer checks that an allocator honoured al before the block is used.
func rawBuffer(b []byte, al Layout, n int) (buffer, error) {
	if uintptr(len(b)) != al.Size {
		return buffer{}, fmt.Errorf("%w: %d slots: got %d bytes, want %d", ErrAllocFailed, n, len(b), al.Size)
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)&(al.Align-1) != 0 {
		return buffer{}, fmt.Errorf("%w: %d slots: block not aligned to %d", ErrBadAlign, n, al.Align)
	}
	return buffer{ptr: p, raw: b}, nil
}

func allocErr(op string, n int, err error) error {
	if errors.Is(err, ErrAllocFailed) || errors.Is(err, ErrOverflow) {
		return fmt.Errorf("%s %d slots: %w", op, n, err)
	}
	return fmt.Errorf("%w: %s %d slots: %w", ErrAllocFailed, op, n, err)
}

// slotAt returns a pointer to slot i of a block of elements of size size.
func slotAt[T any](p unsafe.Pointer, i int, size uintptr) *T {
	return (*T)(unsafe.Add(p, uintptr(i)*size))
}
