package vector

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"unsafe"
)

// MaxObjectSize is the largest byte size a single allocation may have.
// Offsets and buffer sizes beyond it cannot be addressed through a Go slice.
const MaxObjectSize = math.MaxInt

// Layout describes the size and alignment of a memory block.
type Layout struct {
	Size  uintptr // bytes
	Align uintptr // power of two
}

// LayoutOf returns the layout of a single T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// Array returns the layout of n contiguous values described by l.
// It fails with ErrOverflow when n*l.Size exceeds MaxObjectSize.
func (l Layout) Array(n int) (Layout, error) {
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	if n < 0 {
		return Layout{}, fmt.Errorf("%w: negative element count %d", ErrOverflow, n)
	}
	size, err := checkedMul(uintptr(n), l.Size)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Size: size, Align: l.Align}, nil
}

// Offset returns the byte offset of element i in an array of l.
func (l Layout) Offset(i int) (uintptr, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: negative index %d", ErrOverflow, i)
	}
	return checkedMul(uintptr(i), l.Size)
}

func (l Layout) validate() error {
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		return fmt.Errorf("%w: %d", ErrBadAlign, l.Align)
	}
	return nil
}

// checkedMul multiplies a and b, failing when the product exceeds MaxObjectSize.
func checkedMul(a, b uintptr) (uintptr, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > MaxObjectSize {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return uintptr(lo), nil
}

// checkedDouble returns 2*n or ErrOverflow.
func checkedDouble(n int) (int, error) {
	if n > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: capacity %d cannot double", ErrOverflow, n)
	}
	return n * 2, nil
}

// alignUp rounds off up to a multiple of align (a power of two).
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}

// hasPointers reports whether values of t carry references the garbage
// collector must see.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
