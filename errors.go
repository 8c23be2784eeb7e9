package mmapbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrLockUnavailable is returned when another live buffer instance
	// already holds the exclusive advisory lock on the file.
	ErrLockUnavailable = errors.New("exclusive lock unavailable")
)

// LayoutError indicates that a file's byte length or mapped address is
// not compatible with a whole number of correctly-aligned elements. It
// arises when loading a foreign or truncated file.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LayoutError struct {
	ByteLen   int
	ElemSize  int
	ElemAlign int
	cause     error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout mismatch: %d bytes cannot be viewed as elements of size %d (alignment %d)",
		e.ByteLen, e.ElemSize, e.ElemAlign)
}

func (e *LayoutError) Unwrap() error { return e.cause }
