//go:build linux

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, size int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	// MAP_POPULATE pre-faults the whole range so read errors surface here
	// rather than on first access.
	flags := unix.MAP_SHARED | unix.MAP_POPULATE

	return unix.Mmap(int(f.Fd()), 0, size, prot, flags)
}

func osAllocate(f *os.File, size int64) error {
	// fallocate rejects a zero length with EINVAL.
	if size == 0 {
		return f.Truncate(0)
	}

	err := unix.Fallocate(int(f.Fd()), 0, 0, size)
	if err == nil {
		return nil
	}
	// Not every filesystem implements fallocate (tmpfs variants, NFS).
	if errors.Is(err, unix.EOPNOTSUPP) || errors.Is(err, unix.ENOSYS) {
		return f.Truncate(size)
	}
	return err
}
