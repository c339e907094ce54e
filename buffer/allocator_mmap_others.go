//go:build !linux

package buffer

// MmapAllocator falls back to heap storage on platforms without the linux mapping path.
type MmapAllocator struct {
	HeapAllocator
}
