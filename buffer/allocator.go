package buffer

// Allocator provides the backing storage of a Buffer.
// Realloc must preserve min(len(old), size) leading bytes. The returned slice always has
// len == size.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Realloc(old []byte, size int) ([]byte, error)
	Free(data []byte)
}

// HeapAllocator keeps storage on the Go heap.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Realloc grows in place when the slice has spare room, otherwise lets append pick a new
// array. Shrinking always copies into an exact-size array so the old one can be collected.
func (HeapAllocator) Realloc(old []byte, size int) ([]byte, error) {
	switch {
	case size < len(old):
		trimmed := make([]byte, size)
		copy(trimmed, old)
		return trimmed, nil
	case size <= cap(old):
		return old[:size], nil
	default:
		return append(old, make([]byte, size-len(old))...), nil
	}
}

func (HeapAllocator) Free([]byte) {}

// moved reports whether two storage slices start at different addresses.
func moved(before, after []byte) bool {
	if cap(before) == 0 || cap(after) == 0 {
		return cap(before) != cap(after)
	}
	return &before[:1][0] != &after[:1][0]
}
