// Package loader fills a buffer from a byte stream.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"scanbuf/buffer"
	"scanbuf/util/log"
)

// ErrLoad matches every Error returned by Load
var ErrLoad = errors.New("load failed")

// Error reports the buffer or stream failure that stopped a load.
type Error struct {
	Loaded int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("load failed after %d bytes: %v", e.Loaded, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrLoad
}

// Load appends src to b one byte at a time and returns the number of bytes appended.
// src is closed on every path.
func Load(src io.ReadCloser, b *buffer.Buffer) (int, error) {
	defer src.Close()
	reader := bufio.NewReader(src)
	n := 0
	for {
		c, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, &Error{Loaded: n, Err: err}
		}
		if err := b.Append(c); err != nil {
			log.Warn("append failed after %d bytes: %v", n, err)
			return n, &Error{Loaded: n, Err: err}
		}
		n++
	}
	log.Debug("loaded %d bytes", n)
	return n, nil
}

// LoadFile opens path and loads it into b.
func LoadFile(path string, b *buffer.Buffer) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	return Load(file, b)
}
