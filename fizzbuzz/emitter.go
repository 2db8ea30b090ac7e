package fizzbuzz

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-fastbuzz/utils/fast"
)

// Flush paths reported to the Observer.
const (
	PathPrime   = "prime"   // first batch of a block, rendered line by line
	PathReplica = "replica" // later batches, advanced by ripple carry
	PathTail    = "tail"    // per-line rendering outside whole batches
	PathCounter = "counter" // the counter strategy's buffer loads
)

// MinBufferSize is the smallest buffer the generators accept. It is enough for
// the tail path, which needs room for one line of any width.
const MinBufferSize = 32

// MaxBufferSize caps the single allocation a generator makes up front.
const MaxBufferSize = 1 << 30

// Observer receives progress from the generators. Calls happen once per buffer
// load or per block, never per line.
type Observer interface {
	Flushed(path string, bytes int)
	BlockDone(digits int, lines uint64, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Flushed(string, int)                   {}
func (nopObserver) BlockDone(int, uint64, time.Duration) {}

// Options configures a generator.
type Options struct {
	BufferSize int
	Observer   Observer
	Logger     logrus.FieldLogger
}

func (o Options) withDefaults() (Options, error) {
	if o.BufferSize == 0 {
		o.BufferSize = 64 * 1024
	}
	if o.BufferSize < MinBufferSize {
		return o, fmt.Errorf("buffer size %d is below the minimum of %d bytes", o.BufferSize, MinBufferSize)
	}
	if o.BufferSize > MaxBufferSize {
		return o, fmt.Errorf("buffer size %d is above the maximum of %d bytes", o.BufferSize, MaxBufferSize)
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	if o.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		o.Logger = l
	}
	return o, nil
}

// Emitter renders digit-width blocks into a fixed buffer and hands full buffer
// loads to the sink. Whole batches of periods are rendered once per block and
// then advanced in place; everything else is rendered line by line.
type Emitter struct {
	buf      *fast.Buffer
	sink     io.Writer
	observer Observer
	log      logrus.FieldLogger

	scratch [MaxLineLen]byte
	written uint64
	lines   uint64
}

// NewEmitter returns an Emitter writing to sink.
func NewEmitter(sink io.Writer, opts Options) (*Emitter, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Emitter{
		buf:      fast.NewBuffer(opts.BufferSize),
		sink:     sink,
		observer: opts.Observer,
		log:      opts.Logger,
	}, nil
}

// Written returns the number of bytes delivered to the sink.
func (e *Emitter) Written() uint64 {
	return e.written
}

// Lines returns the number of lines emitted, including unflushed ones.
func (e *Emitter) Lines() uint64 {
	return e.lines
}

// EmitBlock emits every line of b. Lines may remain buffered until the next
// block or Flush.
func (e *Emitter) EmitBlock(b Block) error {
	began := time.Now()
	log := e.log.WithFields(logrus.Fields{"digits": b.Digits, "start": b.Start, "end": b.End})

	p, err := SelectBatch(b.Digits, e.buf.Cap())
	var full uint64
	if err == nil {
		full = b.Lines() / p.LinesPerBatch
	}

	if full == 0 {
		if err != nil {
			log.WithError(err).Debug("Rendering block line by line")
		} else {
			log.WithField("batch_lines", p.LinesPerBatch).Debug("Block shorter than one batch, rendering line by line")
		}
		if err := e.emitLines(b.Start, b.End); err != nil {
			return err
		}
	} else {
		log.WithFields(logrus.Fields{
			"addend":     p.Addend,
			"suffix":     p.SuffixDigits,
			"batch_size": p.BatchBytes(),
			"batches":    full,
		}).Debug("Emitting block in batches")

		if err := e.emitBatches(b, p, full); err != nil {
			return err
		}
		if err := e.emitLines(b.Start+full*p.LinesPerBatch, b.End); err != nil {
			return err
		}
	}

	e.lines += b.Lines()
	e.observer.BlockDone(b.Digits, b.Lines(), time.Since(began))
	return nil
}

// Flush delivers any buffered lines to the sink.
func (e *Emitter) Flush() error {
	if e.buf.Len() == 0 {
		return nil
	}
	return e.send(e.buf.Flush(), PathTail)
}

func (e *Emitter) emitBatches(b Block, p Batch, full uint64) error {
	// Template offsets are relative to an empty buffer.
	if err := e.Flush(); err != nil {
		return err
	}

	tmpl, err := e.prime(b.Start, p)
	if err != nil {
		return err
	}
	if err := e.send(e.buf.Bytes(), PathPrime); err != nil {
		return err
	}

	for i := uint64(1); i < full; i++ {
		tmpl.Advance(e.buf.Bytes(), p.CyclesPerBatch, p.Addend, p.SuffixDigits)
		if err := e.send(e.buf.Bytes(), PathReplica); err != nil {
			return err
		}
	}
	e.buf.Reset()
	return nil
}

// prime renders the first batch of a block from start and records the layout of
// its first period.
func (e *Emitter) prime(start uint64, p Batch) (*CycleTemplate, error) {
	var tmpl CycleTemplate
	for i := uint64(0); i < p.LinesPerBatch; i++ {
		n := start + i
		if err := e.appendLine(n); err != nil {
			return nil, fmt.Errorf("prime %s: %w", p, err)
		}
		if i >= Period {
			continue
		}
		if Classify(n) == Number {
			if err := tmpl.record(e.buf.Len() - 2); err != nil {
				return nil, err
			}
		}
		if i == Period-1 {
			if err := tmpl.complete(e.buf.Len()); err != nil {
				return nil, err
			}
		}
	}

	if tmpl.Size != p.BytesPerCycle {
		return nil, fmt.Errorf("%w: period is %d bytes, want %d", ErrLayout, tmpl.Size, p.BytesPerCycle)
	}
	if e.buf.Len() != p.BatchBytes() {
		return nil, fmt.Errorf("%w: primed %d bytes, want %d", ErrLayout, e.buf.Len(), p.BatchBytes())
	}
	return &tmpl, nil
}

func (e *Emitter) emitLines(from, to uint64) error {
	for n := from; n < to; n++ {
		if e.buf.Spare() < MaxLineLen {
			if err := e.Flush(); err != nil {
				return err
			}
		}
		if err := e.appendLine(n); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) appendLine(n uint64) error {
	_, err := e.buf.Write(AppendLine(e.scratch[:0], n))
	return err
}

func (e *Emitter) send(p []byte, path string) error {
	if _, err := e.sink.Write(p); err != nil {
		return &SinkError{Op: path, Err: err}
	}
	e.written += uint64(len(p))
	e.observer.Flushed(path, len(p))
	return nil
}
