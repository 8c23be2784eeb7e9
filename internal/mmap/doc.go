// Package mmap provides writable memory-mapped file access plus the small
// set of file primitives the buffer lifecycle needs: preallocation,
// synchronous flush and non-blocking exclusive advisory locking.
//
// # Overview
//
// A Mapping is a shared read-write view of a file's contents. Writes to
// the mapped bytes reach the file through the operating system's page
// cache without explicit write calls. Pages are populated eagerly where
// the platform supports it, so I/O errors surface at mapping time instead
// of on first access.
//
// # Usage
//
//	m, err := mmap.Map(f, size)
//	if err != nil { ... }
//	defer m.Close()
//
//	copy(m.Bytes(), payload) // reflected in the file
//	m.Sync()                 // force durability now
//
//	// One live holder per file
//	if err := mmap.TryLockExclusive(f); err != nil { ... }
//	defer mmap.Unlock(f)
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Linux: mmap(2) with MAP_POPULATE, fallocate(2) with ftruncate
//     fallback, flock(2)
//   - Other Unix (macOS, BSD): mmap(2) plus MADV_WILLNEED, ftruncate(2),
//     flock(2)
//   - Windows: CreateFileMapping/MapViewOfFile, SetEndOfFile, LockFileEx
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. All other
// synchronization on the mapped bytes is the caller's responsibility.
package mmap
