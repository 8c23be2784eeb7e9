package mmapbuf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/mmapbuf/internal/cast"
	"github.com/hupe1980/mmapbuf/internal/mmap"
)

// zeroBlockSize is the write granularity used to zero-fill new files.
const zeroBlockSize = 4096

var zeroBlock [zeroBlockSize]byte

// BackedBuffer is a fixed-capacity, mutable buffer of T backed by a file.
//
// The buffer owns the file handle, a shared read-write mapping of the
// file's full contents and an exclusive advisory lock on the file, all
// held for the buffer's whole life and released by Close. The mapped
// byte length is always an exact multiple of T's size; this is validated
// at construction and cannot change afterwards.
type BackedBuffer[T Pod] struct {
	f      *os.File
	m      *mmap.Mapping
	path   string
	opts   *options
	closed bool
}

// New creates a new buffer at path with a fixed capacity. The capacity
// is in units of T, not in bytes.
//
// The file is created or truncated, extended to capacity elements,
// explicitly zero-filled, mapped and locked. A capacity of zero is legal
// and yields an empty buffer whose file is still locked. On any failure
// no buffer is returned and already-acquired resources are released; the
// file itself may have been truncated or partially written by then.
func New[T Pod](capacity int, path string, opts ...Option) (*BackedBuffer[T], error) {
	o := applyOptions(opts)

	size, err := cast.ByteLen[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("mmapbuf: new %q: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mmapbuf: create %q: %w", path, err)
	}

	if err := mmap.Allocate(f, size); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapbuf: allocate %d bytes for %q: %w", size, path, err)
	}

	// Preallocation alone does not guarantee zeroed, readable content on
	// every filesystem. Write the zeroes explicitly.
	if err := zeroFill(f, size); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapbuf: zero-fill %q: %w", path, err)
	}

	b, err := wrap[T](f, int(size), o)
	if err != nil {
		f.Close()
		return nil, err
	}

	o.logger.Debug("created backed buffer", "path", path, "bytes", size, "elems", b.Len())

	return b, nil
}

// Load opens the buffer backing file at path without resizing it. The
// element count is the file length divided by T's size; a file whose
// length is not an exact multiple is rejected with a *LayoutError. If
// another live instance holds the lock on path, Load fails with
// ErrLockUnavailable.
func Load[T Pod](path string, opts ...Option) (*BackedBuffer[T], error) {
	o := applyOptions(opts)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("mmapbuf: open %q: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapbuf: stat %q: %w", path, err)
	}

	size := fi.Size()
	if int64(int(size)) != size {
		f.Close()
		return nil, fmt.Errorf("mmapbuf: %q: file of %d bytes is too large to map", path, size)
	}

	b, err := wrap[T](f, int(size), o)
	if err != nil {
		f.Close()
		return nil, err
	}

	o.logger.Debug("loaded backed buffer", "path", path, "bytes", size, "elems", b.Len())

	return b, nil
}

// FromSlice creates a new buffer at path and copies the contents of data
// into it. The resulting buffer has exactly len(data) elements.
func FromSlice[T Pod](data []T, path string, opts ...Option) (*BackedBuffer[T], error) {
	b, err := New[T](len(data), path, opts...)
	if err != nil {
		return nil, err
	}

	b.CopyFrom(data)

	return b, nil
}

// wrap maps size bytes of f, validates the element layout and acquires
// the exclusive lock. On failure the mapping is released; the file is
// the caller's to close.
func wrap[T Pod](f *os.File, size int, o *options) (*BackedBuffer[T], error) {
	m, err := mmap.Map(f, size)
	if err != nil {
		return nil, fmt.Errorf("mmapbuf: map %q: %w", f.Name(), err)
	}

	if err := cast.Check[T](m.Bytes()); err != nil {
		m.Close()
		return nil, &LayoutError{
			ByteLen:   size,
			ElemSize:  cast.Size[T](),
			ElemAlign: cast.Align[T](),
			cause:     err,
		}
	}

	if err := mmap.TryLockExclusive(f); err != nil {
		m.Close()
		if errors.Is(err, mmap.ErrLockHeld) {
			return nil, fmt.Errorf("mmapbuf: lock %q: %w", f.Name(), ErrLockUnavailable)
		}
		return nil, fmt.Errorf("mmapbuf: lock %q: %w", f.Name(), err)
	}

	if o.advise != AccessDefault {
		_ = m.Advise(o.advise) // hint only
	}

	return &BackedBuffer[T]{f: f, m: m, path: f.Name(), opts: o}, nil
}

func zeroFill(f *os.File, size int64) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	for size > 0 {
		n := int64(zeroBlockSize)
		if size < n {
			n = size
		}
		if _, err := f.Write(zeroBlock[:n]); err != nil {
			return err
		}
		size -= n
	}
	return nil
}

// Slice returns the buffer contents as a mutable slice. Writes to it are
// reflected in the backing file through the page cache. The slice is
// valid only until Close; after Close it is nil.
//
// The view re-runs layout validation on every call. The layout was
// proven at construction and capacity is immutable, so a failure here
// means the mapped region was invalidated since then, which panics.
func (b *BackedBuffer[T]) Slice() []T {
	return cast.MustSlice[T](b.m.Bytes())
}

// Len returns the number of elements in the buffer, or 0 after Close.
func (b *BackedBuffer[T]) Len() int {
	return len(b.Slice())
}

// Get returns the element at index i. It panics if i is out of range,
// following slice indexing semantics.
func (b *BackedBuffer[T]) Get(i int) T {
	return b.Slice()[i]
}

// Set stores v at index i. It panics if i is out of range, following
// slice indexing semantics.
func (b *BackedBuffer[T]) Set(i int, v T) {
	b.Slice()[i] = v
}

// CopyFrom copies elements from src into the buffer, starting at index
// zero, and returns the number of elements copied: the minimum of the
// two lengths.
func (b *BackedBuffer[T]) CopyFrom(src []T) int {
	return copy(b.Slice(), src)
}

// Flush blocks until modified pages have been queued for writing to
// storage. Data reaches the file through the page cache without it;
// Flush only forces durability ordering.
func (b *BackedBuffer[T]) Flush() error {
	if err := b.m.Sync(); err != nil {
		return fmt.Errorf("mmapbuf: flush %q: %w", b.path, err)
	}
	return nil
}

// Advise provides a kernel hint about the expected access pattern.
func (b *BackedBuffer[T]) Advise(pattern AccessPattern) error {
	return b.m.Advise(pattern)
}

// Path returns the filesystem path of the backing file.
func (b *BackedBuffer[T]) Path() string {
	return b.path
}

// Close releases the advisory lock, then the mapping, then the file
// handle. It is idempotent. Unlocking is best effort and never surfaces
// an error: closing the handle releases the lock at the OS level
// regardless.
func (b *BackedBuffer[T]) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	var err error
	if b.opts.syncOnClose {
		err = b.m.Sync()
	}

	_ = mmap.Unlock(b.f)

	if cerr := b.m.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := b.f.Close(); cerr != nil && err == nil {
		err = cerr
	}

	b.opts.logger.Debug("closed backed buffer", "path", b.path)

	return err
}
