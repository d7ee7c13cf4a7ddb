//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package vector

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs buffers with anonymous private memory mappings,
// keeping large vectors outside the Go heap entirely. Mappings are page
// aligned and zero filled by the kernel. Safe for concurrent use.
type MmapAllocator struct {
	pageSize uintptr
}

// NewMmapAllocator returns an MmapAllocator, or ErrUnsupported on platforms
// without anonymous mappings.
func NewMmapAllocator() (*MmapAllocator, error) {
	return &MmapAllocator{pageSize: uintptr(os.Getpagesize())}, nil
}

// Allocate implements Allocator.
func (m *MmapAllocator) Allocate(l Layout) ([]byte, error) {
	if err := m.check(l); err != nil {
		return nil, err
	}
	if l.Size == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(-1, 0, int(l.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrAllocFailed, l.Size, err)
	}
	return b, nil
}

// Reallocate implements Allocator.
func (m *MmapAllocator) Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error) {
	nl := Layout{Size: newSize, Align: old.Align}
	if err := m.check(nl); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return m.Allocate(nl)
	}
	if newSize == 0 {
		if err := m.Free(b, old); err != nil {
			return nil, err
		}
		return []byte{}, nil
	}
	nb, err := remap(b, int(newSize))
	if err != nil {
		return nil, fmt.Errorf("%w: remap %d -> %d bytes: %w", ErrAllocFailed, len(b), newSize, err)
	}
	return nb, nil
}

// Free implements Allocator.
func (m *MmapAllocator) Free(b []byte, _ Layout) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("vector: munmap: %w", err)
	}
	return nil
}

func (m *MmapAllocator) check(l Layout) error {
	if err := l.validate(); err != nil {
		return err
	}
	if l.Align > m.pageSize {
		return fmt.Errorf("%w: %d exceeds page size %d", ErrBadAlign, l.Align, m.pageSize)
	}
	if l.Size > MaxObjectSize {
		return fmt.Errorf("%w: %d bytes", ErrOverflow, l.Size)
	}
	return nil
}
