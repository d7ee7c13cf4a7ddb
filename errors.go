package vector

import "errors"

var (
	// ErrZeroSized indicates an element type that occupies no storage.
	ErrZeroSized = errors.New("vector: zero-sized element types are not allowed")

	// ErrAllocFailed indicates that an allocator could not satisfy a request.
	ErrAllocFailed = errors.New("vector: allocation failed")

	// ErrOverflow indicates a size, offset or capacity computation that exceeds
	// the largest addressable object.
	ErrOverflow = errors.New("vector: size overflow")

	// ErrBadAlign indicates an alignment that is not a power of two or that the
	// allocator cannot honour.
	ErrBadAlign = errors.New("vector: invalid alignment")

	// ErrPointerElem indicates an element type holding Go pointers paired with
	// an allocator whose memory is not scanned by the garbage collector.
	ErrPointerElem = errors.New("vector: element type contains pointers")

	// ErrUnsupported indicates an allocator that is unavailable on this platform.
	ErrUnsupported = errors.New("vector: allocator not supported on this platform")

	// ErrIndexOutOfRange indicates an indexed access past the live elements.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrReleased indicates use of a vector or allocator after Release.
	ErrReleased = errors.New("vector: use after Release()")
)
