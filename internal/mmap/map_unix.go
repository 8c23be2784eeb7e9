//go:build unix && !linux

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, size int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_SHARED

	data, err := unix.Mmap(int(f.Fd()), 0, size, prot, flags)
	if err != nil {
		return nil, err
	}

	// No MAP_POPULATE outside Linux; WILLNEED is the closest hint and the
	// mapping stays correct without it.
	_ = unix.Madvise(data, unix.MADV_WILLNEED)

	return data, nil
}

func osAllocate(f *os.File, size int64) error {
	return f.Truncate(size)
}
