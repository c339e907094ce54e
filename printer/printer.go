// Package printer dumps the unread contents of a buffer.
package printer

import (
	"bufio"
	"errors"
	"io"
	"scanbuf/buffer"
)

var ErrEmptyBuffer = errors.New("empty buffer")

// Print writes every byte from the read cursor to the end of b, followed by a newline,
// and returns the number of content bytes written. An empty buffer is reported with an
// "Empty buffer" line and ErrEmptyBuffer.
func Print(w io.Writer, b *buffer.Buffer) (int, error) {
	empty, err := b.IsEmpty()
	if err != nil {
		return 0, err
	}
	out := bufio.NewWriter(w)
	if empty {
		if _, err := out.WriteString("Empty buffer\n"); err != nil {
			return 0, err
		}
		if err := out.Flush(); err != nil {
			return 0, err
		}
		return 0, ErrEmptyBuffer
	}
	n := 0
	for {
		c, err := b.ReadByte()
		if err == buffer.ErrEndOfBuffer {
			break
		}
		if err != nil {
			return n, err
		}
		if err := out.WriteByte(c); err != nil {
			return n, err
		}
		n++
	}
	if err := out.WriteByte('\n'); err != nil {
		return n, err
	}
	return n, out.Flush()
}
