//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package vector

// MmapAllocator is unavailable on this platform.
type MmapAllocator struct{}

// NewMmapAllocator returns ErrUnsupported on this platform.
func NewMmapAllocator() (*MmapAllocator, error) {
	return nil, ErrUnsupported
}

// Allocate implements Allocator.
func (m *MmapAllocator) Allocate(Layout) ([]byte, error) { return nil, ErrUnsupported }

// Reallocate implements Allocator.
func (m *MmapAllocator) Reallocate([]byte, Layout, uintptr) ([]byte, error) {
	return nil, ErrUnsupported
}

// Free implements Allocator.
func (m *MmapAllocator) Free([]byte, Layout) error { return ErrUnsupported }
