package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-fastbuzz/fizzbuzz"
	"github.com/rony4d/go-fastbuzz/flags"
)

var paramsCommand = cli.Command{
	Name:  "params",
	Usage: "Print the batch parameters chosen for every digit width",
	Description: `
Shows, for the configured --buffer size, how many lines and periods each
digit width emits per batch and which digit the batch advances. Widths
marked "lines" are too wide for whole batches and are rendered line by line.`,
	Action: printParams,
}

var verifyCommand = cli.Command{
	Name:   "verify",
	Usage:  "Check that a stream is the sequence",
	Flags:  flags.VerifyFlags(),
	Action: verifyStream,
}

func printParams(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	return writeParams(ctx.App.Writer, cfg.Generator.BufferSize, cfg.Generator.MaxDigits)
}

func writeParams(w io.Writer, capacity, maxDigits int) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "DIGITS\tBYTES/PERIOD\tLINES/BATCH\tPERIODS\tBATCH BYTES\tADDEND\tSUFFIX")
	for d := 1; d <= maxDigits; d++ {
		p, err := fizzbuzz.SelectBatch(d, capacity)
		switch {
		case errors.Is(err, fizzbuzz.ErrBufferTooSmall):
			fmt.Fprintf(tw, "%d\t%d\tlines\t-\t-\t-\t-\n", d, fizzbuzz.BytesPerCycle(d))
		case err != nil:
			return err
		default:
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
				d, p.BytesPerCycle, p.LinesPerBatch, p.CyclesPerBatch, p.BatchBytes(), p.Addend, p.SuffixDigits)
		}
	}
	return tw.Flush()
}

func verifyStream(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if path := ctx.String("input"); path != "" && path != "-" {
		f, err := os.Open(resolvePath(path))
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	first := ctx.Uint64("first")
	log.WithFields(logrus.Fields{"input": ctx.String("input"), "first": first}).Debug("Verifying stream")
	n, err := fizzbuzz.Verify(in, first)
	if err != nil {
		return fmt.Errorf("verified %d lines: %w", n, err)
	}
	fmt.Fprintf(ctx.App.Writer, "OK: %d lines\n", n)
	return nil
}
