package mmapbuf

// Buffer is an array of T whose persistence strategy is hidden from the
// caller: either a file-backed BackedBuffer or a plain in-memory slice.
// Exactly one variant is active, and all read/write operations behave
// identically for both. The only observable differences are persistence
// across process restarts and file-locking semantics.
type Buffer[T Pod] struct {
	disk *BackedBuffer[T]
	mem  []T
}

// NewOnDisk creates a new disk-backed buffer at the given path with a
// fixed capacity. The capacity is in units of T, not in bytes.
func NewOnDisk[T Pod](capacity int, path string, opts ...Option) (*Buffer[T], error) {
	b, err := New[T](capacity, path, opts...)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{disk: b}, nil
}

// LoadFromDisk loads a disk-backed buffer from an existing path.
func LoadFromDisk[T Pod](path string, opts ...Option) (*Buffer[T], error) {
	b, err := Load[T](path, opts...)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{disk: b}, nil
}

// FromSliceOnDisk creates a new disk-backed buffer at the given path and
// copies the contents of data to it. The buffer has the same length as
// the slice.
func FromSliceOnDisk[T Pod](data []T, path string, opts ...Option) (*Buffer[T], error) {
	b, err := FromSlice(data, path, opts...)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{disk: b}, nil
}

// NewInMemory creates a zero-filled in-memory buffer with a fixed
// capacity. No OS resources are involved.
func NewInMemory[T Pod](capacity int) *Buffer[T] {
	return &Buffer[T]{mem: make([]T, capacity)}
}

// FromSliceInMemory creates an in-memory buffer that adopts data as its
// storage without copying.
func FromSliceInMemory[T Pod](data []T) *Buffer[T] {
	return &Buffer[T]{mem: data}
}

// OnDisk reports whether the disk variant is active.
func (b *Buffer[T]) OnDisk() bool {
	return b.disk != nil
}

// Slice returns the buffer contents as a mutable slice, regardless of
// the active variant.
func (b *Buffer[T]) Slice() []T {
	if b.disk != nil {
		return b.disk.Slice()
	}
	return b.mem
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.Slice())
}

// Get returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) Get(i int) T {
	return b.Slice()[i]
}

// Set stores v at index i. It panics if i is out of range.
func (b *Buffer[T]) Set(i int, v T) {
	b.Slice()[i] = v
}

// CopyFrom copies elements from src into the buffer and returns the
// number of elements copied.
func (b *Buffer[T]) CopyFrom(src []T) int {
	return copy(b.Slice(), src)
}

// Flush forces modified pages to storage for the disk variant. It is a
// no-op for the memory variant.
func (b *Buffer[T]) Flush() error {
	if b.disk != nil {
		return b.disk.Flush()
	}
	return nil
}

// Close releases the lock, mapping and file handle of the disk variant.
// It is a no-op for the memory variant.
func (b *Buffer[T]) Close() error {
	if b.disk != nil {
		return b.disk.Close()
	}
	return nil
}
