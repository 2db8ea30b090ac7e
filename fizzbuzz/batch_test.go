package fizzbuzz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesPerCycle(t *testing.T) {
	assert.Equal(t, 55, BytesPerCycle(1))
	assert.Equal(t, 63, BytesPerCycle(2))
	assert.Equal(t, 175, BytesPerCycle(16))
}

// TestSelectBatch_Known pins selections for the default 64 KiB buffer and a few
// small ones.
func TestSelectBatch_Known(t *testing.T) {
	tests := []struct {
		digits   int
		capacity int
		addend   byte
		suffix   int
	}{
		{1, 64 * 1024, 9, 3},
		{2, 64 * 1024, 9, 3},
		{9, 64 * 1024, 6, 3},
		{16, 64 * 1024, 3, 3},
		{3, 256, 3, 1},
		{2, 256, 6, 1},
		{3, 1000, 9, 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("d=%d/cap=%d", tc.digits, tc.capacity), func(t *testing.T) {
			p, err := SelectBatch(tc.digits, tc.capacity)
			require.NoError(t, err)
			require.Equal(t, tc.addend, p.Addend)
			require.Equal(t, tc.suffix, p.SuffixDigits)
			require.Equal(t, uint64(tc.addend)*Pow10(tc.suffix), p.LinesPerBatch)
		})
	}

	p, err := SelectBatch(16, 64*1024)
	require.NoError(t, err)
	require.Equal(t, 200, p.CyclesPerBatch)
	require.Equal(t, 35000, p.BatchBytes())
}

// TestSelectBatch_Validity checks the sizing guarantees for every width and a
// spread of capacities.
func TestSelectBatch_Validity(t *testing.T) {
	for _, capacity := range []int{MinBufferSize, 100, 128, 256, 1000, 4096, 64 * 1024, 1 << 20} {
		for d := 1; d <= MaxDigits; d++ {
			p, err := SelectBatch(d, capacity)
			if err != nil {
				require.ErrorIs(t, err, ErrBufferTooSmall)
				continue
			}
			name := fmt.Sprintf("d=%d cap=%d", d, capacity)

			require.Contains(t, []byte{3, 6, 9}, p.Addend, name)
			require.GreaterOrEqual(t, p.SuffixDigits, 1, name)
			require.Zero(t, p.LinesPerBatch%Period, name)
			require.Equal(t, p.LinesPerBatch/Period, uint64(p.CyclesPerBatch), name)
			require.LessOrEqual(t, p.BatchBytes(), capacity, name)

			// Once there are two or more batches in a block, the suffix position
			// lies inside the field and the last advance stays below 10^d.
			b := FullBlock(d)
			full := b.Lines() / p.LinesPerBatch
			if full >= 2 {
				require.Less(t, p.SuffixDigits, d, name)
				lastStart := b.Start + (full-1)*p.LinesPerBatch
				require.Less(t, lastStart+p.LinesPerBatch-1, b.End, name)
			}
		}
	}
}

func TestSelectBatch_Degenerate(t *testing.T) {
	// Not even one period fits.
	_, err := SelectBatch(1, MinBufferSize)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// One period fits but 9·10^0 lines is not a whole number of periods.
	_, err = SelectBatch(3, 100)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// Two periods, 30 lines: still suffix 0.
	_, err = SelectBatch(1, 2*BytesPerCycle(1))
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// Three periods, 45 lines: 3·10^1.
	p, err := SelectBatch(1, 3*BytesPerCycle(1))
	require.NoError(t, err)
	require.Equal(t, uint64(30), p.LinesPerBatch)
}
