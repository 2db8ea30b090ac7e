package launcher

import (
	"github.com/rony4d/go-fastbuzz/integration"
)

// Defaults bundles the baseline configuration values the launcher uses before
// the preset, the config file and the flags override them.

type Defaults struct {
	Generator GeneratorDefaults
	Logging   LoggingDefaults
	Metrics   MetricsDefaults
}

// GeneratorDefaults captures what is generated and how.

type GeneratorDefaults struct {
	Strategy   string //	Generation strategy. "batched" renders one batch per digit width and advances it in place; the others exist for comparison.
	BufferSize int    //	Size of the fixed output buffer in bytes. Bigger buffers mean more lines per batch and fewer writes to the sink.
	MaxDigits  int    //	The run ends after the last number with this many digits. 16 matches the reference behaviour; 19 is the ceiling for uint64.
	Limit      uint64 //	Optional last number (0 = none). Useful for tests and for comparing strategies on the same prefix.
	Output     string //	Destination file. "-" means stdout.
}

// MetricsDefaults controls the optional Prometheus endpoint.

type MetricsDefaults struct {
	Enable   bool   //	Toggle for the metrics server; when true /metrics is served while the sequence is generated.
	HTTPAddr string //	IP/interface the metrics server binds to (127.0.0.1 keeps it local).
	HTTPPort int    //	TCP port for the metrics server.
}

// LoggingDefaults controls log verbosity/format.

type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json). Logs always go to stderr.
	Color     bool   //	Whether to use ANSI color codes in logs.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	preset := integration.DefaultPreset()
	return Defaults{
		Generator: GeneratorDefaults{
			Strategy:   preset.Strategy,
			BufferSize: preset.BufferSize,
			MaxDigits:  preset.MaxDigits,
			Limit:      0,
			Output:     "-",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Metrics: MetricsDefaults{
			Enable:   preset.EnableMetrics,
			HTTPAddr: "127.0.0.1",
			HTTPPort: 6060,
		},
	}
}
