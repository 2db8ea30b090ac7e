package fizzbuzz

import (
	"io"
	"strconv"
)

// Keyword lines, terminator included.
const (
	FizzLine     = "Fizz\n"
	BuzzLine     = "Buzz\n"
	FizzBuzzLine = "FizzBuzz\n"
)

// Period is the length of the repeating divisibility pattern, lcm(3, 5).
const Period = 15

// NumericPerPeriod is how many lines of every period are plain numbers.
const NumericPerPeriod = 8

// KeywordBytes is the fixed byte cost of one period apart from the digits:
// 4 Fizz lines, 2 Buzz lines, 1 FizzBuzz line and 8 numeric terminators.
const KeywordBytes = 4*len(FizzLine) + 2*len(BuzzLine) + len(FizzBuzzLine) + NumericPerPeriod

// MaxLineLen bounds the length of any rendered line (20 digits and '\n').
const MaxLineLen = 21

// Kind classifies an element of the sequence.
type Kind uint8

const (
	Number Kind = iota
	Fizz
	Buzz
	FizzBuzz
)

var kinds = [Period]Kind{
	FizzBuzz, Number, Number, Fizz, Number,
	Buzz, Fizz, Number, Number, Fizz,
	Buzz, Number, Fizz, Number, Number,
}

func (k Kind) String() string {
	switch k {
	case Fizz:
		return "Fizz"
	case Buzz:
		return "Buzz"
	case FizzBuzz:
		return "FizzBuzz"
	default:
		return "Number"
	}
}

// Classify returns the kind of line n renders as.
func Classify(n uint64) Kind {
	return kinds[n%Period]
}

// AppendLine appends the line for n to dst and returns the extended slice.
func AppendLine(dst []byte, n uint64) []byte {
	switch Classify(n) {
	case FizzBuzz:
		return append(dst, FizzBuzzLine...)
	case Fizz:
		return append(dst, FizzLine...)
	case Buzz:
		return append(dst, BuzzLine...)
	}
	dst = strconv.AppendUint(dst, n, 10)
	return append(dst, '\n')
}

// Line returns the line for n as a string.
func Line(n uint64) string {
	var scratch [MaxLineLen]byte
	return string(AppendLine(scratch[:0], n))
}

// WriteLine writes the line for n to w.
func WriteLine(w io.Writer, n uint64) error {
	var scratch [MaxLineLen]byte
	_, err := w.Write(AppendLine(scratch[:0], n))
	return err
}
