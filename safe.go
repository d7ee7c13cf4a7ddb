package vector

import (
	"sync"
	"unsafe"
)

// SafeVector is a mutex-protected wrapper around Vector for concurrent access.
// Element pointers never escape the lock: in-place mutation goes through
// Update or View, whose callbacks run while the mutex is held.
//
// The zero value is an empty vector backed by the Go heap; use
// NewSafeVector to pass options.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafeVector creates a new thread-safe vector. Options are those of New.
func NewSafeVector[T any](opts ...Option) *SafeVector[T] {
	return &SafeVector[T]{v: New[T](opts...)}
}

// Push thread-safely appends value.
func (s *SafeVector[T]) Push(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vec().Push(value)
}

// Len thread-safely returns the number of elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vec().Len()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vec().Cap()
}

// Get thread-safely returns a copy of the element at index i.
func (s *SafeVector[T]) Get(i int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vec().Get(i)
}

// Update runs fn on the element at index i while holding the lock.
// It reports false, without calling fn, when i is out of range.
func (s *SafeVector[T]) Update(i int, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.vec().GetMut(i)
	if !ok {
		return false
	}
	fn(p)
	return true
}

// View runs fn with exclusive access to the underlying vector.
// fn must not retain v or pointers into it.
func (s *SafeVector[T]) View(fn func(v *Vector[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.vec())
}

// Clone thread-safely returns an independent, unsynchronized copy.
func (s *SafeVector[T]) Clone() *Vector[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vec().Clone()
}

// Release thread-safely finalizes the elements and frees the buffer.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vec().Release()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vec().Metrics()
}

// Generic helpers for SafeVector

// SafeSearch thread-safely returns the index of the first element equal to value.
func SafeSearch[T comparable](s *SafeVector[T], value T) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Search(s.vec(), value)
}

// SafeEqual thread-safely compares the contents of a and b.
// Locks are taken in address order so concurrent SafeEqual(a, b) and
// SafeEqual(b, a) cannot deadlock.
func SafeEqual[T comparable](a, b *SafeVector[T]) bool {
	if a == b {
		a.mu.Lock()
		defer a.mu.Unlock()
		v := a.vec()
		return Equal(v, v)
	}
	first, second := a, b
	if uintptrOf(b) < uintptrOf(a) {
		first, second = b, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()
	return Equal(a.vec(), b.vec())
}

// vec returns the wrapped vector, creating it on first use of a zero value.
// The caller holds s.mu.
func (s *SafeVector[T]) vec() *Vector[T] {
	if s.v == nil {
		s.v = New[T]()
	}
	return s.v
}

func uintptrOf[T any](s *SafeVector[T]) uintptr {
	return uintptr(unsafe.Pointer(s))
}
