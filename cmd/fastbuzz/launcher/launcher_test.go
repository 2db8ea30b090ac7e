package launcher

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-fastbuzz/fizzbuzz"
)

func TestWriteParams(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeParams(&out, 256, 4))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "DIGITS"))

	// 256 bytes hold 3 periods of 3-digit lines: 45 lines, so 3·10 per batch.
	assert.Equal(t, []string{"3", "71", "30", "2", "142", "3", "1"}, strings.Fields(lines[3]))
	// 4-digit periods are 79 bytes; 3 of them make 45 lines, a 3·10 batch again.
	assert.Equal(t, []string{"4", "79", "30", "2", "158", "3", "1"}, strings.Fields(lines[4]))
}

func TestWriteParams_Unbatched(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeParams(&out, fizzbuzz.MinBufferSize, 1))

	fields := strings.Fields(strings.Split(strings.TrimSpace(out.String()), "\n")[1])
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, "lines", fields[2])
}

func TestNewLogger(t *testing.T) {
	cfg := defaultConfig()

	cfg.Logging.Verbosity = 4
	log, err := newLogger(cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.Level)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	cfg.Logging.Verbosity = 0
	cfg.Logging.Format = "json"
	log, err = newLogger(cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logrus.FatalLevel, log.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	cfg.Sentry.DSN = "not a dsn"
	_, err = newLogger(cfg, io.Discard)
	assert.Error(t, err)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func TestRun_WritesFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.Generator.BufferSize = 1024
	cfg.Generator.MaxDigits = 4
	cfg.Generator.Output = filepath.Join(t.TempDir(), "nested", "out.txt")

	require.NoError(t, run(cfg, quietLogger()))

	f, err := os.Open(cfg.Generator.Output)
	require.NoError(t, err)
	defer f.Close()
	n, err := fizzbuzz.Verify(f, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(9999), n)
}

func TestRun_WithMetricsServer(t *testing.T) {
	cfg := defaultConfig()
	cfg.Generator.MaxDigits = 3
	cfg.Generator.Output = filepath.Join(t.TempDir(), "out.txt")
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 0

	require.NoError(t, run(cfg, quietLogger()))
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, &os.PathError{Op: "write", Path: "|1", Err: syscall.EPIPE}
}

func TestCountingWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := &countingWriter{w: &buf}
	_, err := cw.Write([]byte("Fizz\n"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("Buzz\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), cw.n)

	cw = &countingWriter{w: brokenPipe{}}
	_, err = cw.Write([]byte("1\n"))
	assert.True(t, errors.Is(err, syscall.EPIPE))
	assert.Zero(t, cw.n)
}
