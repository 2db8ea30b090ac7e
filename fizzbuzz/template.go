package fizzbuzz

import (
	"fmt"

	"github.com/rony4d/go-fastbuzz/utils/digits"
)

// CycleTemplate records where the numbers of one rendered period live inside a
// buffer load. Keyword lines are never touched after priming, so only the
// numeric fields are tracked.
type CycleTemplate struct {
	// Fields holds, for each numeric line of the period, the buffer offset of
	// its least significant digit.
	Fields [NumericPerPeriod]int
	// Size is the byte length of the period.
	Size int

	count int
}

// record appends the offset of a numeric field's last digit.
func (t *CycleTemplate) record(offset int) error {
	if t.count == NumericPerPeriod {
		return fmt.Errorf("%w: more than %d numeric lines in a period", ErrLayout, NumericPerPeriod)
	}
	t.Fields[t.count] = offset
	t.count++
	return nil
}

// complete checks that a whole period was recorded.
func (t *CycleTemplate) complete(size int) error {
	if t.count != NumericPerPeriod {
		return fmt.Errorf("%w: %d numeric lines in a period, want %d", ErrLayout, t.count, NumericPerPeriod)
	}
	t.Size = size
	return nil
}

// Advance adds addend at suffix positions from the right of every numeric field
// in the first cycles periods of buf.
func (t *CycleTemplate) Advance(buf []byte, cycles int, addend byte, suffix int) {
	base := -suffix
	for c := 0; c < cycles; c++ {
		for _, off := range t.Fields {
			digits.Add(buf, base+off, addend)
		}
		base += t.Size
	}
}
