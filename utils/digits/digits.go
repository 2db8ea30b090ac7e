package digits

// This package implements in-place arithmetic on ASCII decimal digits.
// A number is a run of '0'..'9' bytes inside a larger byte slice; its least
// significant digit sits at a known offset and more significant digits extend
// towards lower indexes.
//
// Use Case:
// - Advancing numbers that were already rendered into an output buffer without
//   formatting them again.
// - Keeping a decimal counter as text so it can be copied straight to the output.

import (
	"errors"
)

// ErrCarryOverflow is raised (via panic) when a carry walks off the left edge of
// the digit run. The caller is responsible for sizing fields so this cannot happen.
var ErrCarryOverflow = errors.New("ripple carry overflow: carry left the digit field")

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Add adds a single-digit addend (0..9) to the number whose least significant
// digit is buf[offset], propagating the carry leftward.
//
// A carry stops at the first digit that is not '9'. If it reaches a byte that
// is not a digit, or the start of buf, Add panics with ErrCarryOverflow.
func Add(buf []byte, offset int, addend byte) {
	d := buf[offset] + addend
	if d <= '9' {
		buf[offset] = d
		return
	}
	buf[offset] = d - 10

	for i := offset - 1; ; i-- {
		if i < 0 || !isDigit(buf[i]) {
			panic(ErrCarryOverflow)
		}
		if buf[i] != '9' {
			buf[i]++
			return
		}
		buf[i] = '0'
	}
}

// AddUint adds an arbitrary addend to the number whose least significant digit
// is buf[offset]. The addend is consumed one decimal digit per position, with
// any generated carry folded into what remains.
//
// It returns the index of the most significant byte it wrote, or offset+1 when
// addend is 0. Digits to the left of the returned index are unchanged.
func AddUint(buf []byte, offset int, addend uint64) int {
	i := offset
	for addend > 0 {
		if i < 0 || !isDigit(buf[i]) {
			panic(ErrCarryOverflow)
		}
		sum := uint64(buf[i]-'0') + addend%10
		addend /= 10
		if sum > 9 {
			sum -= 10
			addend++
		}
		buf[i] = '0' + byte(sum)
		i--
	}
	return i + 1
}
