package fizzbuzz

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("valid stream", func(t *testing.T) {
		n, err := Verify(bytes.NewReader(reference(1, 12345)), 1)
		require.NoError(t, err)
		require.Equal(t, uint64(12345), n)
	})

	t.Run("valid from offset", func(t *testing.T) {
		n, err := Verify(strings.NewReader("14\nFizzBuzz\n16\n"), 14)
		require.NoError(t, err)
		require.Equal(t, uint64(3), n)
	})

	t.Run("first below one", func(t *testing.T) {
		n, err := Verify(strings.NewReader("FizzBuzz\n1\n"), 0)
		require.ErrorIs(t, err, ErrInvalidRange)
		require.Zero(t, n)
	})

	t.Run("empty", func(t *testing.T) {
		n, err := Verify(strings.NewReader(""), 1)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("wrong line", func(t *testing.T) {
		n, err := Verify(strings.NewReader("1\n2\nFizz\n4\nFizz\n"), 1)
		require.Equal(t, uint64(4), n)
		var mm *MismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, uint64(5), mm.Line)
		require.Equal(t, "Buzz\n", mm.Want)
		require.Equal(t, "Fizz\n", mm.Got)
	})

	t.Run("truncated last line", func(t *testing.T) {
		_, err := Verify(strings.NewReader("1\n2\nFi"), 1)
		var mm *MismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, uint64(3), mm.Line)
	})

	t.Run("overlong line is cut in the report", func(t *testing.T) {
		_, err := Verify(strings.NewReader(strings.Repeat("7", 200)+"\n"), 1)
		var mm *MismatchError
		require.True(t, errors.As(err, &mm))
		require.Len(t, mm.Got, maxReported)
	})

	t.Run("read error", func(t *testing.T) {
		_, err := Verify(iotest.ErrReader(iotest.ErrTimeout), 1)
		require.ErrorIs(t, err, iotest.ErrTimeout)
	})
}
