package cast

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrNotMultiple is returned when a region's byte length is not an
	// exact multiple of the element size.
	ErrNotMultiple = errors.New("cast: byte length is not a multiple of element size")
	// ErrMisaligned is returned when a region's base address does not
	// satisfy the element type's alignment.
	ErrMisaligned = errors.New("cast: base address is not aligned for element type")
)

// Size returns the size of T in bytes.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Align returns the alignment requirement of T in bytes.
func Align[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// ByteLen returns the byte length of a region holding capacity elements
// of T, guarding against negative capacities and overflow. The result is
// guaranteed to fit in the platform's int, so it is safe to map.
func ByteLen[T any](capacity int) (int64, error) {
	if capacity < 0 {
		return 0, fmt.Errorf("cast: negative capacity %d", capacity)
	}
	size := Size[T]()
	if capacity > math.MaxInt/size {
		return 0, fmt.Errorf("integer overflow: %d elements of size %d exceed the addressable byte range", capacity, size)
	}
	return int64(capacity) * int64(size), nil
}

// Check reports whether b can be viewed as a []T. An empty region always
// passes.
func Check[T any](b []byte) error {
	size := Size[T]()
	if len(b)%size != 0 {
		return fmt.Errorf("%w: %d bytes, element size %d", ErrNotMultiple, len(b), size)
	}
	if len(b) == 0 {
		return nil
	}
	align := uintptr(Align[T]())
	if addr := uintptr(unsafe.Pointer(unsafe.SliceData(b))); addr%align != 0 {
		return fmt.Errorf("%w: address 0x%x, alignment %d", ErrMisaligned, addr, align)
	}
	return nil
}

// Slice reinterprets b as a []T sharing the same backing memory, after
// validating length and alignment with Check. An empty region yields a
// nil slice.
func Slice[T any](b []byte) ([]T, error) {
	if err := Check[T](b); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/Size[T]()), nil
}

// MustSlice is Slice for regions already validated at construction time.
// A failure indicates the backing memory was corrupted or replaced since
// then, which cannot be recovered from, so it panics.
func MustSlice[T any](b []byte) []T {
	s, err := Slice[T](b)
	if err != nil {
		panic(fmt.Sprintf("cast: validated region no longer viewable: %v", err))
	}
	return s
}
