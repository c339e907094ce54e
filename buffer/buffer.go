// Package buffer implements the input staging buffer of a lexical scanner.
//
// Bytes are appended through a write cursor and read back through an independent read
// cursor. A mark can be placed on the read side so the scanner can retract or reset to
// it when it has to backtrack.
package buffer

import (
	"fmt"
	"math"
	"strings"
)

// Mode is the growth policy applied when an append finds the buffer full.
type Mode int8

const (
	Fixed          Mode = 0
	Additive       Mode = 1
	Multiplicative Mode = -1
)

const (
	// MaxSize is the platform size limit of a buffer. No buffer ever reaches it.
	MaxSize = math.MaxInt16
	// MaxCapacity is the largest capacity growth will produce
	MaxCapacity = MaxSize - 1

	MaxAdditiveInc       = math.MaxUint8
	MaxMultiplicativeInc = 100
)

func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// ParseMode converts a mode token to a Mode. Both the single letter form (f, a, m)
// and the full name are accepted.
func ParseMode(token string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "f", "fixed":
		return Fixed, nil
	case "a", "additive":
		return Additive, nil
	case "m", "multiplicative":
		return Multiplicative, nil
	}
	return Fixed, fmt.Errorf("%w: unknown mode %q", ErrConfig, token)
}

type Buffer struct {
	data []byte

	addOffset  int // addOffset 写指针，也是已写入的字节数
	getOffset  int // getOffset 读指针
	markOffset int

	mode      Mode
	incFactor int
	relocated bool
	eob       bool

	alloc    Allocator
	released bool
}

// New allocates a heap backed buffer.
func New(capacity, incFactor int, mode Mode) (*Buffer, error) {
	return NewWithAllocator(capacity, incFactor, mode, HeapAllocator{})
}

// NewWithAllocator allocates a buffer whose storage comes from alloc.
// An incFactor of 0 turns any mode into Fixed.
func NewWithAllocator(capacity, incFactor int, mode Mode, alloc Allocator) (*Buffer, error) {
	if mode == Fixed && capacity == 0 {
		return nil, fmt.Errorf("%w: fixed buffer needs a capacity", ErrConfig)
	}
	if capacity < 0 || capacity >= MaxSize {
		return nil, fmt.Errorf("%w: capacity %d not in [0, %d]", ErrConfig, capacity, MaxCapacity)
	}
	if incFactor < 0 {
		return nil, fmt.Errorf("%w: negative increment factor %d", ErrConfig, incFactor)
	}
	if incFactor == 0 {
		mode = Fixed
	}
	switch mode {
	case Fixed:
		incFactor = 0
	case Additive:
		if incFactor > MaxAdditiveInc {
			return nil, fmt.Errorf("%w: additive increment %d not in [1, %d]", ErrConfig, incFactor, MaxAdditiveInc)
		}
	case Multiplicative:
		if incFactor > MaxMultiplicativeInc {
			return nil, fmt.Errorf("%w: multiplicative increment %d not in [1, %d]", ErrConfig, incFactor, MaxMultiplicativeInc)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrConfig, int8(mode))
	}
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	data, err := alloc.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		data:      data,
		mode:      mode,
		incFactor: incFactor,
		alloc:     alloc,
	}, nil
}

func (b *Buffer) valid() error {
	if b == nil || b.released {
		return ErrNilBuffer
	}
	return nil
}

// Free releases the storage. The buffer can not be used afterwards.
func (b *Buffer) Free() error {
	if err := b.valid(); err != nil {
		return err
	}
	b.alloc.Free(b.data)
	b.data = nil
	b.addOffset, b.getOffset, b.markOffset = 0, 0, 0
	b.released = true
	return nil
}

// Clear empties the buffer but keeps its storage, mode and relocation flag.
func (b *Buffer) Clear() error {
	if err := b.valid(); err != nil {
		return err
	}
	b.addOffset = 0
	b.getOffset = 0
	b.markOffset = 0
	b.eob = false
	return nil
}

// Limit returns the number of bytes written.
func (b *Buffer) Limit() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	return b.addOffset, nil
}

func (b *Buffer) Capacity() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	return len(b.data), nil
}

func (b *Buffer) Mode() (Mode, error) {
	if err := b.valid(); err != nil {
		return Fixed, err
	}
	return b.mode, nil
}

func (b *Buffer) IncFactor() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	return b.incFactor, nil
}

// Relocated reports whether any growth or compaction moved the storage since construction
// or since the last ResetRelocated.
func (b *Buffer) Relocated() (bool, error) {
	if err := b.valid(); err != nil {
		return false, err
	}
	return b.relocated, nil
}

// ResetRelocated clears the relocation flag. The buffer itself never does.
func (b *Buffer) ResetRelocated() error {
	if err := b.valid(); err != nil {
		return err
	}
	b.relocated = false
	return nil
}

func (b *Buffer) IsEmpty() (bool, error) {
	if err := b.valid(); err != nil {
		return false, err
	}
	return b.addOffset == 0, nil
}

// IsFull reports whether the last read found the read cursor at the write cursor.
// It returns the same cached flag as EOB.
func (b *Buffer) IsFull() (bool, error) {
	if err := b.valid(); err != nil {
		return false, err
	}
	return b.eob, nil
}

// NeedsGrowth reports whether the next append needs the growth engine.
func (b *Buffer) NeedsGrowth() (bool, error) {
	if err := b.valid(); err != nil {
		return false, err
	}
	return b.addOffset == len(b.data), nil
}

// EOB returns the end-of-buffer flag cached by the last ReadByte.
func (b *Buffer) EOB() (bool, error) {
	if err := b.valid(); err != nil {
		return false, err
	}
	return b.eob, nil
}

func (b *Buffer) ReadOffset() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	return b.getOffset, nil
}

func (b *Buffer) MarkOffset() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	return b.markOffset, nil
}
