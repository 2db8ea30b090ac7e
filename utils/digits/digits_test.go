package digits

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// field renders v zero-padded to width and wraps it in newlines, the way a
// numeric line sits between its neighbours in the output buffer.
func field(v uint64, width int) ([]byte, int) {
	s := fmt.Sprintf("\n%0*d\n", width, v)
	return []byte(s), width // offset of the least significant digit
}

// TestAdd_Table covers carries of every length inside a field.
func TestAdd_Table(t *testing.T) {
	tests := []struct {
		name   string
		start  uint64
		width  int
		addend byte
		want   uint64
	}{
		{"no carry", 10, 2, 3, 13},
		{"zero addend", 47, 2, 0, 47},
		{"single carry", 17, 2, 3, 20},
		{"chain through nines", 1997, 4, 9, 2006},
		{"carry into top digit", 899, 3, 1, 900},
		{"max addend", 1, 1, 8, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf, off := field(tc.start, tc.width)
			Add(buf, off, tc.addend)
			want, _ := field(tc.want, tc.width)
			require.Equal(t, string(want), string(buf))
		})
	}
}

// TestAdd_SuffixOffset applies the addend to a more significant position, as the
// batch emitter does, leaving the lower digits untouched.
func TestAdd_SuffixOffset(t *testing.T) {
	buf, off := field(10011, 5)
	Add(buf, off-2, 9) // +900
	want, _ := field(10911, 5)
	assert.Equal(t, string(want), string(buf))

	Add(buf, off-2, 9) // +900, carries into the thousands
	want, _ = field(11811, 5)
	assert.Equal(t, string(want), string(buf))
}

// TestAdd_Random checks that repeated small additions match formatting the sum.
func TestAdd_Random(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		width := 1 + r.Intn(12)
		limit := uint64(1)
		for j := 0; j < width; j++ {
			limit *= 10
		}
		suffix := r.Intn(width)
		scale := uint64(1)
		for j := 0; j < suffix; j++ {
			scale *= 10
		}

		start := uint64(r.Int63n(int64(limit)))
		buf, off := field(start, width)
		sum := start
		for step := 0; step < 50; step++ {
			a := byte(r.Intn(10))
			if sum+uint64(a)*scale >= limit {
				break
			}
			Add(buf, off-suffix, a)
			sum += uint64(a) * scale
		}

		want, _ := field(sum, width)
		require.Equal(t, string(want), string(buf), "case#%d width=%d suffix=%d start=%d", i, width, suffix, start)
	}
}

// TestAdd_Overflow verifies the carry never crosses into the neighbouring line.
func TestAdd_Overflow(t *testing.T) {
	buf, off := field(99, 2)
	assert.PanicsWithValue(t, ErrCarryOverflow, func() {
		Add(buf, off, 1)
	})

	assert.PanicsWithValue(t, ErrCarryOverflow, func() {
		Add([]byte("9"), 0, 5)
	})
}

// TestAddUint covers the multi-digit addend variant.
func TestAddUint(t *testing.T) {
	tests := []struct {
		start  uint64
		width  int
		addend uint64
		want   uint64
		top    int // index of the most significant byte written, relative to the field
	}{
		{10, 2, 0, 10, 2},
		{10, 2, 5, 15, 1},
		{15, 2, 15, 30, 0},
		{1, 6, 99999, 100000, 0},
		{123456, 6, 654321, 777777, 0},
		{9, 4, 1, 10, 2},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d+%d", tc.start, tc.addend), func(t *testing.T) {
			buf, off := field(tc.start, tc.width)
			top := AddUint(buf, off, tc.addend)
			want, _ := field(tc.want, tc.width)
			require.Equal(t, string(want), string(buf))
			require.Equal(t, tc.top+1, top) // +1 for the leading newline
		})
	}

	buf, off := field(95, 2)
	assert.PanicsWithValue(t, ErrCarryOverflow, func() {
		AddUint(buf, off, 5)
	})
}

// TestCounter walks the counter across several width changes.
func TestCounter(t *testing.T) {
	c := NewCounter(1)
	require.Equal(t, "1\n", string(c.Line()))
	require.Equal(t, 1, c.Width())

	r := rand.New(rand.NewSource(0))
	v := uint64(1)
	for i := 0; i < 5000; i++ {
		n := uint64(r.Intn(40))
		c.Bump(n)
		v += n
		require.Equal(t, strconv.FormatUint(v, 10), string(c.Digits()))
	}
	require.Equal(t, v, c.Value())
	require.Equal(t, strconv.FormatUint(v, 10)+"\n", string(c.Line()))
}

func TestCounter_Start(t *testing.T) {
	for _, start := range []uint64{0, 9, 10, 999999, 1 << 63} {
		c := NewCounter(start)
		assert.Equal(t, strconv.FormatUint(start, 10), string(c.Digits()))
		assert.Equal(t, start, c.Value())
	}

	c := NewCounter(999)
	c.Bump(1)
	assert.Equal(t, "1000\n", string(c.Line()))
	assert.Equal(t, 4, c.Width())
}

// BenchmarkAdd measures a single-digit ripple-carry update against reformatting.
func BenchmarkAdd(b *testing.B) {
	b.Run("Format", func(b *testing.B) {
		buf := make([]byte, 0, 32)
		v := uint64(1000000000)
		for i := 0; i < b.N; i++ {
			buf = strconv.AppendUint(buf[:0], v, 10)
			v += 3
		}
	})
	b.Run("Ripple", func(b *testing.B) {
		buf := []byte("1000000000")
		for i := 0; i < b.N; i++ {
			if buf[0] == '9' {
				copy(buf, "1000000000")
			}
			Add(buf, len(buf)-1, 3)
		}
	})
}
