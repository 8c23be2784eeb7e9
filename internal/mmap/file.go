package mmap

import "os"

// TryLockExclusive acquires a non-blocking exclusive advisory lock on f.
// It returns ErrLockHeld if any other handle already holds the lock,
// including handles within the same process. The lock is advisory: it
// excludes cooperating lockers only, not arbitrary filesystem access.
func TryLockExclusive(f *os.File) error {
	return osTryLock(f)
}

// Unlock releases the advisory lock held on f. Closing the file releases
// the lock at the OS level regardless, so callers may ignore the error.
func Unlock(f *os.File) error {
	return osUnlock(f)
}

// Allocate extends f to size bytes using the platform's preallocation
// primitive. The extended region is not guaranteed to read back as zeroes
// on every filesystem; callers that need that must write the zeroes.
func Allocate(f *os.File, size int64) error {
	if size < 0 {
		return ErrInvalidSize
	}
	return osAllocate(f, size)
}
