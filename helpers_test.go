package vector

import (
	"errors"
	"testing"
)

var errInjected = errors.New("injected failure")

// failingAllocator delegates to inner for the first failAfter calls to
// Allocate or Reallocate and fails every call after that.
type failingAllocator struct {
	inner     Allocator
	failAfter int
	calls     int
}

func (f *failingAllocator) Allocate(l Layout) ([]byte, error) {
	f.calls++
	if f.calls > f.failAfter {
		return nil, errInjected
	}
	return f.inner.Allocate(l)
}

func (f *failingAllocator) Reallocate(b []byte, old Layout, newSize uintptr) ([]byte, error) {
	f.calls++
	if f.calls > f.failAfter {
		return nil, errInjected
	}
	return f.inner.Reallocate(b, old, newSize)
}

func (f *failingAllocator) Free(b []byte, l Layout) error {
	return f.inner.Free(b, l)
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error: %v", r, r)
		}
		err = e
	}()
	fn()
	return nil
}
