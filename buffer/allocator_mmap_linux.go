//go:build linux

package buffer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs storage with anonymous private mappings. Every Realloc maps a new
// region, so a growing buffer always relocates.
type MmapAllocator struct{}

func (MmapAllocator) Alloc(size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrAllocation, size, err)
	}
	return data, nil
}

func (a MmapAllocator) Realloc(old []byte, size int) ([]byte, error) {
	data, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	a.Free(old)
	return data, nil
}

func (MmapAllocator) Free(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munmap(data)
}
