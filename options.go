package vector

import (
	"io"
	"log/slog"
)

// discardLogger drops every record. It is used until WithLogger is given.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	// allocator supplies raw byte buffers. nil means typed Go heap storage,
	// which accepts any element type.
	allocator Allocator

	// finalizer is a func(*T) run on each live element by Release.
	// Stored untyped because Option is not generic.
	finalizer any

	// logger receives debug records for allocation, growth and release.
	// Default: discard.
	logger *slog.Logger
}

// WithAllocator stores the vector's buffer in memory obtained from a.
// Raw buffers are invisible to the garbage collector, so New panics with
// ErrPointerElem if the element type contains pointers.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.allocator = a }
}

// WithFinalizer registers fn to run on every live element when the vector is
// released. It runs after the element's own Finalize method, if any.
// New panics if T does not match the vector's element type.
func WithFinalizer[T any](fn func(*T)) Option {
	return func(o *options) { o.finalizer = fn }
}

// WithLogger sets the structured logger. A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
