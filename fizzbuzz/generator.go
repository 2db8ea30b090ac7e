package fizzbuzz

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rony4d/go-fastbuzz/utils/digits"
	"github.com/rony4d/go-fastbuzz/utils/fast"
)

// Strategy names a way of producing the sequence. All strategies produce
// byte-identical output; they differ only in speed.
type Strategy string

const (
	StrategyBatched  Strategy = "batched"
	StrategyCounter  Strategy = "counter"
	StrategyBuffered Strategy = "buffered"
	StrategyNaive    Strategy = "naive"
)

// Strategies lists every strategy, fastest first.
func Strategies() []Strategy {
	return []Strategy{StrategyBatched, StrategyCounter, StrategyBuffered, StrategyNaive}
}

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	names := make([]string, 0, 4)
	for _, s := range Strategies() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("unknown strategy: %q (valid: %s)", name, strings.Join(names, ", "))
}

// Generator writes the lines for the inclusive range [first, last] to w.
type Generator interface {
	Generate(w io.Writer, first, last uint64) error
}

// NewGenerator returns the generator for strategy s.
func NewGenerator(s Strategy, opts Options) (Generator, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	switch s {
	case StrategyBatched:
		return &batchedGenerator{opts: opts}, nil
	case StrategyCounter:
		return &counterGenerator{opts: opts}, nil
	case StrategyBuffered:
		return &bufferedGenerator{size: opts.BufferSize}, nil
	case StrategyNaive:
		return naiveGenerator{}, nil
	default:
		_, err := ParseStrategy(string(s))
		return nil, err
	}
}

type batchedGenerator struct {
	opts Options
}

func (g *batchedGenerator) Generate(w io.Writer, first, last uint64) error {
	e, err := NewEmitter(w, g.opts)
	if err != nil {
		return err
	}
	if err := Drive(first, last, e.EmitBlock); err != nil {
		return err
	}
	return e.Flush()
}

// counterGenerator keeps the current number as ASCII text and bumps it by the
// gap since the previous numeric line, so no integer is ever formatted.
type counterGenerator struct {
	opts Options
}

func (g *counterGenerator) Generate(w io.Writer, first, last uint64) error {
	if err := CheckRange(first, last); err != nil {
		return err
	}

	buf := fast.NewBuffer(g.opts.BufferSize)
	flush := func() error {
		n := buf.Len()
		if _, err := w.Write(buf.Flush()); err != nil {
			return &SinkError{Op: PathCounter, Err: err}
		}
		g.opts.Observer.Flushed(PathCounter, n)
		return nil
	}

	counter := digits.NewCounter(first)
	value := first
	for n := first; n <= last; n++ {
		if buf.Spare() < MaxLineLen {
			if err := flush(); err != nil {
				return err
			}
		}
		var err error
		switch Classify(n) {
		case Number:
			counter.Bump(n - value)
			value = n
			_, err = buf.Write(counter.Line())
		case Fizz:
			_, err = buf.WriteString(FizzLine)
		case Buzz:
			_, err = buf.WriteString(BuzzLine)
		case FizzBuzz:
			_, err = buf.WriteString(FizzBuzzLine)
		}
		if err != nil {
			return err
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	return flush()
}

type bufferedGenerator struct {
	size int
}

func (g *bufferedGenerator) Generate(w io.Writer, first, last uint64) error {
	if err := CheckRange(first, last); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, g.size)
	var scratch [MaxLineLen]byte
	for n := first; n <= last; n++ {
		if _, err := bw.Write(AppendLine(scratch[:0], n)); err != nil {
			return &SinkError{Op: "write", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &SinkError{Op: "flush", Err: err}
	}
	return nil
}

// naiveGenerator formats and writes one line per call with no buffering.
type naiveGenerator struct{}

func (naiveGenerator) Generate(w io.Writer, first, last uint64) error {
	if err := CheckRange(first, last); err != nil {
		return err
	}

	for n := first; n <= last; n++ {
		var err error
		switch Classify(n) {
		case FizzBuzz, Fizz, Buzz:
			_, err = fmt.Fprintln(w, Classify(n))
		default:
			_, err = fmt.Fprintln(w, n)
		}
		if err != nil {
			return &SinkError{Op: "write", Err: err}
		}
	}
	return nil
}
