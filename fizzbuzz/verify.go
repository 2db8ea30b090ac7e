package fizzbuzz

import (
	"bufio"
	"bytes"
	"io"
)

// maxReported caps how much of a bad line a MismatchError carries.
const maxReported = 64

// Verify reads a stream and checks that it is the sequence starting at first.
// It returns the number of correct lines read. A stream that ends mid-line, or
// contains a line differing from the expected one, yields a *MismatchError.
func Verify(r io.Reader, first uint64) (uint64, error) {
	if err := CheckRange(first, first); err != nil {
		return 0, err
	}
	br := bufio.NewReaderSize(r, 64*1024)
	var want []byte
	n := first
	for {
		line, err := br.ReadSlice('\n')
		if len(line) > 0 {
			want = AppendLine(want[:0], n)
			if !bytes.Equal(line, want) {
				got := line
				if len(got) > maxReported {
					got = got[:maxReported]
				}
				return n - first, &MismatchError{Line: n, Want: string(want), Got: string(got)}
			}
			n++
		}
		switch err {
		case nil:
		case io.EOF:
			return n - first, nil
		default:
			return n - first, err
		}
	}
}
