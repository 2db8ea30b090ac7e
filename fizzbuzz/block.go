package fizzbuzz

import (
	"fmt"
)

// MaxDigits is the widest block whose end, 10^MaxDigits, still fits a uint64.
const MaxDigits = 19

// DefaultDigits is the width the generator stops after unless told otherwise.
const DefaultDigits = 16

var pow10 = func() [MaxDigits + 1]uint64 {
	var p [MaxDigits + 1]uint64
	p[0] = 1
	for i := 1; i <= MaxDigits; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// Pow10 returns 10^e for 0 <= e <= MaxDigits.
func Pow10(e int) uint64 {
	return pow10[e]
}

// DigitCount returns the number of decimal digits of n (1 for 0).
func DigitCount(n uint64) int {
	d := 1
	for d < MaxDigits && n >= pow10[d] {
		d++
	}
	if d == MaxDigits && n >= pow10[MaxDigits] {
		d++
	}
	return d
}

// Block is a half-open range [Start, End) of integers that all have Digits digits.
type Block struct {
	Digits int
	Start  uint64
	End    uint64
}

// Lines returns the number of integers in the block.
func (b Block) Lines() uint64 {
	return b.End - b.Start
}

func (b Block) String() string {
	return fmt.Sprintf("d=%d [%d, %d)", b.Digits, b.Start, b.End)
}

// FullBlock returns the complete block of width d, [10^(d-1), 10^d).
func FullBlock(d int) Block {
	return Block{Digits: d, Start: pow10[d-1], End: pow10[d]}
}

// LastOf returns the last integer of a stream that runs through every number of
// at most maxDigits digits, optionally stopped early at limit (0 = no limit).
func LastOf(maxDigits int, limit uint64) (uint64, error) {
	if maxDigits < 1 || maxDigits > MaxDigits {
		return 0, fmt.Errorf("%w: digit width %d outside 1..%d", ErrInvalidRange, maxDigits, MaxDigits)
	}
	last := pow10[maxDigits] - 1
	if limit != 0 && limit < last {
		last = limit
	}
	return last, nil
}

// CheckRange validates the inclusive range [first, last]. A range with
// last < first is valid and empty.
func CheckRange(first, last uint64) error {
	if first < 1 {
		return fmt.Errorf("%w: sequence starts at 1, got %d", ErrInvalidRange, first)
	}
	if last >= pow10[MaxDigits] {
		return fmt.Errorf("%w: %d is wider than %d digits", ErrInvalidRange, last, MaxDigits)
	}
	return nil
}

// Blocks splits the inclusive range [first, last] into digit-width blocks in
// ascending order. An empty range yields no blocks.
func Blocks(first, last uint64) ([]Block, error) {
	if err := CheckRange(first, last); err != nil {
		return nil, err
	}
	if last < first {
		return nil, nil
	}

	var blocks []Block
	for d := DigitCount(first); d <= DigitCount(last); d++ {
		b := FullBlock(d)
		if b.Start < first {
			b.Start = first
		}
		if b.End > last+1 {
			b.End = last + 1
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Drive calls fn for every block of [first, last] in order and stops at the
// first error.
func Drive(first, last uint64, fn func(Block) error) error {
	blocks, err := Blocks(first, last)
	if err != nil {
		return err
	}
	for _, b := range blocks {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}
