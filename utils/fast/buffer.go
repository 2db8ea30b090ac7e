package fast

import (
	"errors"
)

// buffer.go provides a fixed-capacity byte accumulator for the output stream.
//
// Purpose:
// - `bufio.Writer` flushes on its own schedule; the batch emitter needs to decide exactly
//   when a buffer load goes to the sink, and to patch bytes already written before it does.
// - The backing array is allocated once and never grows. Appends that do not fit fail
//   instead of reallocating, so offsets recorded into the buffer stay valid until Flush.
// - Not safe for concurrent use. A Buffer is owned by a single emitter.

// ErrOverrun is returned when a write would exceed the remaining capacity.
var ErrOverrun = errors.New("buffer overrun: write exceeds spare capacity")

type Buffer struct {
	// data is the backing array; its length is the capacity.
	data []byte
	// offset is the number of valid bytes written since the last flush.
	offset int
}

// NewBuffer allocates a Buffer able to hold exactly capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		data: make([]byte, capacity),
	}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the number of valid bytes.
func (b *Buffer) Len() int {
	return b.offset
}

// Spare returns how many more bytes fit before the buffer is full.
func (b *Buffer) Spare() int {
	return len(b.data) - b.offset
}

// Write copies p after the valid region. It writes nothing and returns ErrOverrun
// when len(p) exceeds Spare.
func (b *Buffer) Write(p []byte) (int, error) {
	n := len(p)
	if n > b.Spare() {
		return 0, ErrOverrun
	}
	copy(b.data[b.offset:], p)
	b.offset += n
	return n, nil
}

// WriteString is Write for a string without the conversion.
func (b *Buffer) WriteString(s string) (int, error) {
	n := len(s)
	if n > b.Spare() {
		return 0, ErrOverrun
	}
	copy(b.data[b.offset:], s)
	b.offset += n
	return n, nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(v byte) error {
	if b.offset == len(b.data) {
		return ErrOverrun
	}
	b.data[b.offset] = v
	b.offset++
	return nil
}

// Bytes returns the valid region.
//
// Note: the returned slice *shares memory* with the buffer. Callers may patch bytes
// in place (the ripple-carry updater relies on this), and the content is overwritten
// by writes following the next Flush or Reset.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.offset]
}

// Flush returns the valid region and resets the cursor to 0. It performs no I/O;
// the caller must consume or copy the region before writing again.
func (b *Buffer) Flush() []byte {
	n := b.offset
	b.offset = 0
	return b.data[:n]
}

// Reset discards the valid region.
func (b *Buffer) Reset() {
	b.offset = 0
}
