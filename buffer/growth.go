package buffer

import "fmt"

// nextCapacity computes the capacity after one growth event.
func nextCapacity(mode Mode, capacity, incFactor int) (int, error) {
	switch mode {
	case Additive:
		newCap := capacity + incFactor
		if newCap > MaxCapacity {
			return capacity, fmt.Errorf("%w: additive growth to %d", ErrOverflow, newCap)
		}
		return newCap, nil
	case Multiplicative:
		if capacity >= MaxCapacity {
			return capacity, fmt.Errorf("%w: capacity already %d", ErrOverflow, capacity)
		}
		growth := (MaxCapacity - capacity) * incFactor / 100
		// 剩余空间太小时增长量会被取整为0，直接扩到最大
		if growth == 0 {
			return MaxCapacity, nil
		}
		newCap := capacity + growth
		if newCap > MaxCapacity {
			newCap = MaxCapacity
		}
		return newCap, nil
	default:
		return capacity, ErrBufferFull
	}
}

// grow 扩容到下一个容量，失败时buffer保持不变
func (b *Buffer) grow() error {
	newCap, err := nextCapacity(b.mode, len(b.data), b.incFactor)
	if err != nil {
		return err
	}
	return b.resize(newCap)
}

// resize moves the storage to an allocation of exactly size bytes and records relocation.
func (b *Buffer) resize(size int) error {
	old := b.data
	data, err := b.alloc.Realloc(old, size)
	if err != nil {
		return err
	}
	if moved(old, data) {
		b.relocated = true
	}
	b.data = data
	return nil
}
