package buffer

import (
	"errors"
	"io"
)

var (
	ErrConfig     = errors.New("invalid buffer configuration")
	ErrOverflow   = errors.New("buffer overflows")
	ErrBufferFull = errors.New("buffer is full")
	ErrAllocation = errors.New("buffer allocation failed")

	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrEndOfBuffer is io.EOF: an exhausted read cursor is a normal terminal condition,
	// not a failure of the buffer.
	ErrEndOfBuffer = io.EOF
	// ErrNilBuffer is returned by every operation on a nil or released buffer
	ErrNilBuffer = errors.New("buffer is nil or released")
)
