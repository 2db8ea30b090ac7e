package fizzbuzz

import (
	"fmt"
)

// Batch describes how one digit width is packed into a buffer load.
//
// A batch holds LinesPerBatch = Addend·10^SuffixDigits consecutive lines. Since
// that count is a whole number of periods, the next batch has the same byte
// layout and every number in it is larger by exactly LinesPerBatch, i.e. by
// Addend at the decimal position SuffixDigits from the right. Advancing a buffer
// load therefore touches one digit per numeric field, plus carries.
type Batch struct {
	Digits         int
	BytesPerCycle  int
	Addend         byte
	SuffixDigits   int
	LinesPerBatch  uint64
	CyclesPerBatch int
}

// BatchBytes is the number of buffer bytes one batch occupies.
func (p Batch) BatchBytes() int {
	return p.CyclesPerBatch * p.BytesPerCycle
}

func (p Batch) String() string {
	return fmt.Sprintf("d=%d addend=%d suffix=%d lines=%d cycles=%d bytes=%d",
		p.Digits, p.Addend, p.SuffixDigits, p.LinesPerBatch, p.CyclesPerBatch, p.BatchBytes())
}

// BytesPerCycle is the size of one rendered period at digit width d.
func BytesPerCycle(d int) int {
	return KeywordBytes + NumericPerPeriod*d
}

// SelectBatch picks the batch for digit width d and a buffer of the given
// capacity: the largest a·10^s lines (a in 9, 6, 3) whose periods fit the buffer.
//
// It returns ErrBufferTooSmall when no such batch is a whole number of periods,
// which is the case whenever s would be 0.
func SelectBatch(d, capacity int) (Batch, error) {
	bytesPerCycle := BytesPerCycle(d)
	maxCycles := capacity / bytesPerCycle
	maxLines := uint64(maxCycles) * Period

	n := maxLines
	suffix := 0
	for n > 30 {
		n /= 10
		suffix++
	}

	var addend byte
	switch {
	case n >= 9:
		addend = 9
	case n >= 6:
		addend = 6
	case n >= 3:
		addend = 3
	}
	if addend == 0 || suffix == 0 || suffix > MaxDigits {
		return Batch{}, fmt.Errorf("%w: d=%d capacity=%d bytes/cycle=%d", ErrBufferTooSmall, d, capacity, bytesPerCycle)
	}

	lines := uint64(addend) * pow10[suffix]
	return Batch{
		Digits:         d,
		BytesPerCycle:  bytesPerCycle,
		Addend:         addend,
		SuffixDigits:   suffix,
		LinesPerBatch:  lines,
		CyclesPerBatch: int(lines / Period),
	}, nil
}
