package mmapbuf

// Pod constrains buffer elements to fixed-size plain-data types: no
// interior pointers, no invalid bit patterns, safely reinterpretable from
// any same-length, correctly-aligned byte sequence.
//
// Go type sets cannot admit arbitrary structs, so the constraint is the
// closure over the explicit-width primitives. bool is excluded because
// not every byte value is a valid bool; int, uint and uintptr are
// excluded because their size varies across platforms while the file
// format is the raw native-layout array.
type Pod interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}
