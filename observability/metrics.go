// Package observability exposes generator progress as Prometheus metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. It implements fizzbuzz.Observer.
type Metrics struct {
	Flushes       *prometheus.CounterVec
	BytesWritten  *prometheus.CounterVec
	LinesEmitted  *prometheus.CounterVec
	BlockDuration *prometheus.HistogramVec
	CurrentDigits prometheus.Gauge
}

// NewMetrics creates and registers all metrics with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		Flushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbuzz_flushes_total",
				Help: "Total number of buffer loads handed to the sink",
			},
			[]string{"path"},
		),
		BytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbuzz_bytes_written_total",
				Help: "Total number of bytes handed to the sink",
			},
			[]string{"path"},
		),
		LinesEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbuzz_lines_emitted_total",
				Help: "Total number of lines emitted per digit width",
			},
			[]string{"digits"},
		),
		BlockDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fastbuzz_block_duration_seconds",
				Help:    "Time spent emitting one digit-width block",
				Buckets: prometheus.ExponentialBuckets(0.0001, 10, 9),
			},
			[]string{"digits"},
		),
		CurrentDigits: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fastbuzz_current_digits",
				Help: "Digit width of the most recently finished block",
			},
		),
	}
}

// Flushed records one buffer load of n bytes taken through path.
func (m *Metrics) Flushed(path string, n int) {
	m.Flushes.WithLabelValues(path).Inc()
	m.BytesWritten.WithLabelValues(path).Add(float64(n))
}

// BlockDone records a finished digit-width block.
func (m *Metrics) BlockDone(digits int, lines uint64, elapsed time.Duration) {
	label := strconv.Itoa(digits)
	m.LinesEmitted.WithLabelValues(label).Add(float64(lines))
	m.BlockDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	m.CurrentDigits.Set(float64(digits))
}
