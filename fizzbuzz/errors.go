package fizzbuzz

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generator.
var (
	ErrBufferTooSmall = errors.New("buffer too small to hold a whole batch of periods")
	ErrLayout         = errors.New("primed buffer does not match the expected period layout")
	ErrInvalidRange   = errors.New("invalid range")
)

// SinkError reports a failed write to the output sink. The run is aborted; bytes
// already delivered stay delivered and the unflushed buffer is discarded.
type SinkError struct {
	Op  string
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink error: op=%s: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// MismatchError reports the first line of a stream that differs from the sequence.
type MismatchError struct {
	Line uint64
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch at line %d: want %q, got %q", e.Line, e.Want, e.Got)
}
