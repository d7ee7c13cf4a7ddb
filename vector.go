package vector

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"
)

// initialCapacity is the slot count of the first allocation.
const initialCapacity = 4

// Finalizer is implemented by element types that need cleanup when the
// vector holding them is released. Finalize is called through a pointer to
// the stored element, exactly once per live element. When the element type
// is itself a pointer or an interface, Finalize is called on the stored
// value; nil values are skipped.
type Finalizer interface {
	Finalize()
}

// Vector is a growable contiguous array of T. It starts without a buffer,
// allocates four slots on the first Push and doubles its capacity whenever a
// Push finds it full. Capacity never shrinks.
//
// The zero value is an empty vector backed by the Go heap. A Vector is not
// goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	buf      buffer
	capacity int
	length   int

	alloc    Allocator
	finalize func(*T)
	logger   *slog.Logger

	grows    int
	released bool
}

// New returns an empty vector. No memory is allocated until the first Push.
//
// New panics with ErrZeroSized if T occupies no storage, and with
// ErrPointerElem if WithAllocator is given for a T that contains pointers.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.layout()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator != nil && hasPointers(reflect.TypeFor[T]()) {
		panic(fmt.Errorf("%w: %v cannot be stored in %T memory", ErrPointerElem, reflect.TypeFor[T](), o.allocator))
	}
	if o.finalizer != nil {
		fn, ok := o.finalizer.(func(*T))
		if !ok {
			panic(fmt.Errorf("vector: finalizer %T does not match element type %v", o.finalizer, reflect.TypeFor[T]()))
		}
		v.finalize = fn
	}
	v.alloc = o.allocator
	v.logger = o.logger
	return v
}

// From returns a vector holding a copy of values, in order.
func From[T any](values []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	for _, x := range values {
		v.Push(x)
	}
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.capacity }

// Push appends value as the last element, growing the buffer when full.
//
// Allocation failure and size overflow are fatal: Push panics with an error
// wrapping ErrAllocFailed or ErrOverflow and leaves the vector unchanged.
func (v *Vector[T]) Push(value T) {
	v.panicIfReleased()
	l := v.layout()

	switch {
	case v.capacity == 0:
		buf, err := allocSlots[T](v.alloc, l, initialCapacity)
		if err != nil {
			panic(err)
		}
		*slotAt[T](buf.ptr, 0, l.Size) = value
		v.buf, v.capacity, v.length = buf, initialCapacity, 1
		v.log().Debug("vector allocated",
			"capacity", initialCapacity,
			"bytes", initialCapacity*int(l.Size))

	case v.length < v.capacity:
		if _, err := l.Offset(v.length); err != nil {
			panic(err)
		}
		*v.slot(v.length) = value
		v.length++

	default:
		newCap, err := checkedDouble(v.capacity)
		if err != nil {
			panic(err)
		}
		buf, err := growSlots[T](v.alloc, l, v.buf, v.capacity, newCap)
		if err != nil {
			panic(err)
		}
		*slotAt[T](buf.ptr, v.length, l.Size) = value
		v.log().Debug("vector grown",
			"from", v.capacity,
			"to", newCap,
			"bytes", newCap*int(l.Size))
		v.buf, v.capacity = buf, newCap
		v.length++
		v.grows++
	}
}

// Get returns the element at index i and true, or the zero value and false
// when i is outside [0, Len()).
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return *v.slot(i), true
}

// GetMut returns a pointer to the element at index i for in-place mutation,
// under the same bounds contract as Get. The pointer is invalidated by the
// next Push that grows the buffer and by Release.
func (v *Vector[T]) GetMut(i int) (*T, bool) {
	if i < 0 || i >= v.length {
		return nil, false
	}
	return v.slot(i), true
}

// At returns the element at index i. Unlike Get, an out-of-range index is a
// programming error and panics with ErrIndexOutOfRange, as slice indexing does.
func (v *Vector[T]) At(i int) T {
	return *v.mustSlot(i)
}

// Set replaces the element at index i. It panics like At when i is out of range.
func (v *Vector[T]) Set(i int, value T) {
	*v.mustSlot(i) = value
}

// Search returns the index of the first element equal to value.
func Search[T comparable](v *Vector[T], value T) (int, bool) {
	return SearchFunc(v, func(x T) bool { return x == value })
}

// SearchFunc returns the index of the first element satisfying match.
func SearchFunc[T any](v *Vector[T], match func(T) bool) (int, bool) {
	for i := 0; i < v.length; i++ {
		if match(*v.slot(i)) {
			return i, true
		}
	}
	return -1, false
}

// Equal reports whether a and b have the same length and equal elements at
// every index. Capacity and allocator are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(*a.slot(i), *b.slot(i)) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy with the same capacity, allocator,
// finalizer and logger. The copy gets its own buffer.
func (v *Vector[T]) Clone() *Vector[T] {
	v.panicIfReleased()
	c := &Vector[T]{alloc: v.alloc, finalize: v.finalize, logger: v.logger}
	if v.capacity == 0 {
		return c
	}
	l := v.layout()
	buf, err := allocSlots[T](v.alloc, l, v.capacity)
	if err != nil {
		panic(err)
	}
	for i := 0; i < v.length; i++ {
		*slotAt[T](buf.ptr, i, l.Size) = *v.slot(i)
	}
	c.buf, c.capacity, c.length = buf, v.capacity, v.length
	return c
}

// All returns an iterator over index/element pairs in order.
// The vector must not grow while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, *v.slot(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements as a Go slice.
func (v *Vector[T]) Slice() []T {
	s := make([]T, v.length)
	for i := range s {
		s[i] = *v.slot(i)
	}
	return s
}

// String formats the elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// Release finalizes every live element, then frees the buffer in a single
// call to the allocator. Slots past Len() are never touched. A vector that
// never allocated frees nothing. After Release the vector is empty and Push
// or Clone panic; calling Release again is a no-op.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	l := LayoutOf[T]()
	finalized := v.finalizeLive()
	freed := 0
	if v.capacity > 0 {
		if err := freeSlots[T](v.alloc, l, v.buf, v.capacity); err != nil {
			v.log().Error("vector release failed", "capacity", v.capacity, "error", err)
		} else {
			freed = v.capacity * int(l.Size)
		}
	}
	v.log().Debug("vector released", "finalized", finalized, "bytes", freed)

	v.buf = buffer{}
	v.capacity, v.length = 0, 0
	v.released = true
}

// finalizeLive runs Finalize and the registered finalizer on each live
// element in index order and returns how many elements were visited.
// Finalize is looked up on *T first; element types that are themselves
// pointers or interfaces are asked directly, skipping nil values.
func (v *Vector[T]) finalizeLive() int {
	_, onPtr := any((*T)(nil)).(Finalizer)
	t := reflect.TypeFor[T]()
	onValue := !onPtr && (t.Kind() == reflect.Interface || t.Implements(finalizerType))
	if !onPtr && !onValue && v.finalize == nil {
		return 0
	}
	for i := 0; i < v.length; i++ {
		p := v.slot(i)
		switch {
		case onPtr:
			any(p).(Finalizer).Finalize()
		case onValue:
			if f, ok := finalizerOf(*p); ok {
				f.Finalize()
			}
		}
		if v.finalize != nil {
			v.finalize(p)
		}
	}
	return v.length
}

var finalizerType = reflect.TypeFor[Finalizer]()

// finalizerOf returns x as a Finalizer unless it is nil or a nil pointer.
func finalizerOf(x any) (Finalizer, bool) {
	f, ok := x.(Finalizer)
	if !ok || f == nil {
		return nil, false
	}
	if rv := reflect.ValueOf(f); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return f, true
}

// layout returns T's layout, panicking on zero-sized types.
func (v *Vector[T]) layout() Layout {
	l := LayoutOf[T]()
	if l.Size == 0 {
		panic(ErrZeroSized)
	}
	return l
}

// slot returns a pointer to slot i. The caller checks bounds.
func (v *Vector[T]) slot(i int) *T {
	return slotAt[T](v.buf.ptr, i, LayoutOf[T]().Size)
}

func (v *Vector[T]) mustSlot(i int) *T {
	if i < 0 || i >= v.length {
		panic(fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, i, v.length))
	}
	return v.slot(i)
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic(ErrReleased)
	}
}

func (v *Vector[T]) log() *slog.Logger {
	if v.logger == nil {
		return discardLogger
	}
	return v.logger
}
