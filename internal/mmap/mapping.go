package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping represents a shared read-write memory mapping of a file.
// It owns the mapped byte slice and is responsible for unmapping it.
// The *os.File stays with the caller and must outlive the Mapping.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
}

// Map maps size bytes of f into memory as a shared read-write mapping.
// Pages are populated eagerly where the platform allows it. size == 0
// yields a valid empty mapping.
func Map(f *os.File, size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := osMap(f, size)
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, size: size}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.data != nil {
		data := m.data
		m.data = nil
		return osUnmap(data)
	}
	return nil
}

// Bytes returns the mapped byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Sync flushes modified pages back to the file and blocks until the
// writes have been queued to storage.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osSync(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}
