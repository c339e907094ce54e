package buffer

import "fmt"

// Append stores c at the write cursor, growing the storage when the mode allows it.
func (b *Buffer) Append(c byte) error {
	if err := b.valid(); err != nil {
		return err
	}
	if b.addOffset == len(b.data) {
		if b.mode == Fixed {
			return ErrBufferFull
		}
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.data[b.addOffset] = c
	b.addOffset++
	return nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.Append(c)
}

// Write implements io.Writer. It stops at the first byte that can not be appended.
func (b *Buffer) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := b.Append(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// ReadByte returns the byte under the read cursor and advances it.
// At the write cursor it returns ErrEndOfBuffer and sets the end-of-buffer flag.
func (b *Buffer) ReadByte() (byte, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if b.getOffset >= b.addOffset {
		b.eob = true
		return 0, ErrEndOfBuffer
	}
	b.eob = false
	c := b.data[b.getOffset]
	b.getOffset++
	return c, nil
}

// Mark saves pos as the retract floor and reset target.
func (b *Buffer) Mark(pos int) (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	if pos < 0 || pos > b.addOffset {
		return -1, fmt.Errorf("%w: mark %d, limit %d", ErrOffsetOutOfRange, pos, b.addOffset)
	}
	b.markOffset = pos
	return pos, nil
}

// Retract moves the read cursor back one byte. It never passes the mark or the start.
func (b *Buffer) Retract() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	if b.getOffset == 0 || b.getOffset == b.markOffset {
		return b.getOffset, nil
	}
	b.getOffset--
	return b.getOffset, nil
}

// Reset moves the read cursor to the mark.
func (b *Buffer) Reset() (int, error) {
	if err := b.valid(); err != nil {
		return -1, err
	}
	b.getOffset = b.markOffset
	return b.getOffset, nil
}

// Rewind moves the read cursor and the mark to the start.
func (b *Buffer) Rewind() error {
	if err := b.valid(); err != nil {
		return err
	}
	b.getOffset = 0
	b.markOffset = 0
	return nil
}

// Locate returns the byte at offset without moving any cursor.
func (b *Buffer) Locate(offset int) (byte, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if offset < 0 || offset >= b.addOffset {
		return 0, fmt.Errorf("%w: locate %d, limit %d", ErrOffsetOutOfRange, offset, b.addOffset)
	}
	return b.data[offset], nil
}
