package buffer

import "fmt"

// Compact shrinks the storage to the written bytes plus one and appends sentinel in the
// extra slot. It is meant to be called once, when the buffer is handed to its reader.
func (b *Buffer) Compact(sentinel byte) error {
	if err := b.valid(); err != nil {
		return err
	}
	size := b.addOffset + 1
	if size > MaxCapacity {
		return fmt.Errorf("%w: compact to %d", ErrOverflow, size)
	}
	if err := b.resize(size); err != nil {
		return err
	}
	b.data[b.addOffset] = sentinel
	b.addOffset++
	return nil
}
