package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-fastbuzz/fizzbuzz"
	"github.com/rony4d/go-fastbuzz/flags"
	"github.com/rony4d/go-fastbuzz/observability"
)

var app = flags.NewApp()

func init() {
	app.Action = generate
	app.Flags = append(flags.CommonFlags(), flags.GeneratorFlags()...)
	app.Commands = []cli.Command{
		paramsCommand,
		verifyCommand,
	}
}

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return app.Run(args)
}

// generate is the default action: write the sequence to the configured output.
func generate(ctx *cli.Context) error {
	if args := ctx.Args(); len(args) > 0 {
		return fmt.Errorf("invalid command: %q", args[0])
	}
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	return run(cfg, log)
}

func run(cfg Config, logger *logrus.Logger) error {
	log := logger.WithField("run", uuid.New().String())

	strategy, err := fizzbuzz.ParseStrategy(cfg.Generator.Strategy)
	if err != nil {
		return err
	}
	last, err := fizzbuzz.LastOf(cfg.Generator.MaxDigits, cfg.Generator.Limit)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	gen, err := fizzbuzz.NewGenerator(strategy, fizzbuzz.Options{
		BufferSize: cfg.Generator.BufferSize,
		Observer:   metrics,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cfg.Generator.Output)
	if err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Warn("Output is a terminal, throughput will be limited by it")
	}

	log.WithFields(logrus.Fields{
		"strategy": strategy,
		"buffer":   cfg.Generator.BufferSize,
		"last":     last,
		"output":   cfg.Generator.Output,
	}).Info("Generating sequence")

	var srv *observability.Server
	if cfg.Metrics.Enabled {
		addr := net.JoinHostPort(cfg.Metrics.Addr, strconv.Itoa(cfg.Metrics.Port))
		srv = observability.NewServer(addr, registry, log)
	}

	sink := &countingWriter{w: out}
	start := time.Now()

	var g errgroup.Group
	if srv != nil {
		g.Go(func() error {
			// Losing the metrics endpoint does not stop the sequence.
			if err := srv.ListenAndServe(); err != nil {
				log.WithError(err).Error("Metrics server failed")
			}
			return nil
		})
	}
	g.Go(func() error {
		if srv != nil {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					log.WithError(err).Warn("Metrics server shutdown failed")
				}
			}()
		}
		return gen.Generate(sink, 1, last)
	})
	genErr := g.Wait()
	closeErr := closeOut()
	elapsed := time.Since(start)

	if genErr != nil {
		if errors.Is(genErr, syscall.EPIPE) {
			log.WithField("bytes", sink.n).Info("Output closed by reader")
			return nil
		}
		log.WithError(genErr).Error("Generation failed")
		return genErr
	}
	if closeErr != nil {
		return fmt.Errorf("close output: %w", closeErr)
	}

	mibps := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		mibps = float64(sink.n) / (1 << 20) / secs
	}
	log.WithFields(logrus.Fields{
		"lines":   last,
		"bytes":   sink.n,
		"elapsed": elapsed.Round(time.Millisecond),
		"mib/s":   fmt.Sprintf("%.1f", mibps),
	}).Info("Sequence complete")
	return nil
}

// openOutput opens the destination named by path; "-" is stdout.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		// A closed pipe must surface as EPIPE instead of killing the process.
		signal.Ignore(syscall.SIGPIPE)
		return os.Stdout, func() error { return nil }, nil
	}
	resolved := resolvePath(path)
	if err := ensureDir(filepath.Dir(resolved)); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(resolved)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, f.Close, nil
}

// countingWriter tallies bytes accepted by the sink for the run summary.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}
