package digits

import (
	"strconv"
)

// MaxWidth is the number of decimal digits needed for any uint64.
const MaxWidth = 20

// Counter is a decimal counter kept as right-aligned ASCII text followed by a
// newline, so the current value can be written out as a complete line.
type Counter struct {
	// text holds MaxWidth digit slots and a trailing '\n'. Unused leading slots are '0'.
	text [MaxWidth + 1]byte
	// head is the index of the most significant digit of the current value.
	head int
}

// NewCounter returns a Counter holding start.
func NewCounter(start uint64) *Counter {
	c := &Counter{}
	for i := 0; i < MaxWidth; i++ {
		c.text[i] = '0'
	}
	c.text[MaxWidth] = '\n'

	var scratch [MaxWidth]byte
	s := strconv.AppendUint(scratch[:0], start, 10)
	c.head = MaxWidth - len(s)
	copy(c.text[c.head:], s)
	return c
}

// Bump advances the counter by n.
func (c *Counter) Bump(n uint64) {
	if top := AddUint(c.text[:MaxWidth], MaxWidth-1, n); top < c.head {
		c.head = top
	}
}

// Digits returns the current value without the newline. The slice aliases the
// counter and changes on the next Bump.
func (c *Counter) Digits() []byte {
	return c.text[c.head:MaxWidth]
}

// Line returns the current value followed by '\n'. The slice aliases the counter.
func (c *Counter) Line() []byte {
	return c.text[c.head:]
}

// Width returns the number of digits in the current value.
func (c *Counter) Width() int {
	return MaxWidth - c.head
}

// Value parses the current value. Intended for checks and tests, not the hot path.
func (c *Counter) Value() uint64 {
	v, _ := strconv.ParseUint(string(c.Digits()), 10, 64)
	return v
}
