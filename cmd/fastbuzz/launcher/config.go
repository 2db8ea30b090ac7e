// This file maps the CLI context and an optional YAML file onto the Config struct.

package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-fastbuzz/fizzbuzz"
	"github.com/rony4d/go-fastbuzz/integration"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Sentry    SentryConfig    `yaml:"sentry"`
}

type GeneratorConfig struct {
	Preset     string `yaml:"preset"`
	Strategy   string `yaml:"strategy"`
	BufferSize int    `yaml:"buffer"`
	MaxDigits  int    `yaml:"digits"`
	Limit      uint64 `yaml:"limit"`
	Output     string `yaml:"output"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Port    int    `yaml:"port"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

//	defaultConfig builds a Config from DefaultConfig in defaults.go so the two
//	stay in sync.

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Generator: GeneratorConfig{
			Preset:     integration.DefaultPreset().Name,
			Strategy:   d.Generator.Strategy,
			BufferSize: d.Generator.BufferSize,
			MaxDigits:  d.Generator.MaxDigits,
			Limit:      d.Generator.Limit,
			Output:     d.Generator.Output,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Metrics: MetricsConfig{
			Enabled: d.Metrics.Enable,
			Addr:    d.Metrics.HTTPAddr,
			Port:    d.Metrics.HTTPPort,
		},
	}
}

// MakeAllConfigs merges defaults, the selected preset, the optional config file
// and CLI overrides into a single validated Config.

func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	var raw []byte
	if file := ctx.GlobalString("config"); file != "" {
		data, err := os.ReadFile(resolvePath(file))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		raw = data
	}

	// The preset sits below the file, but the file may name it.
	preset := ""
	if len(raw) > 0 {
		var peek Config
		if err := loadConfigFile(raw, &peek); err != nil {
			return Config{}, err
		}
		preset = peek.Generator.Preset
	}
	if ctx.GlobalIsSet("preset") {
		preset = ctx.GlobalString("preset")
	}
	if preset != "" {
		if err := applyPreset(&cfg, preset); err != nil {
			return Config{}, err
		}
	}

	if len(raw) > 0 {
		if err := loadConfigFile(raw, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting the generator cannot run with.
func (c Config) Validate() error {
	if _, err := fizzbuzz.ParseStrategy(c.Generator.Strategy); err != nil {
		return err
	}
	if c.Generator.BufferSize < fizzbuzz.MinBufferSize {
		return fmt.Errorf("buffer size %d is below the minimum of %d bytes", c.Generator.BufferSize, fizzbuzz.MinBufferSize)
	}
	if c.Generator.BufferSize > fizzbuzz.MaxBufferSize {
		return fmt.Errorf("buffer size %d is above the maximum of %d bytes", c.Generator.BufferSize, fizzbuzz.MaxBufferSize)
	}
	if _, err := fizzbuzz.LastOf(c.Generator.MaxDigits, c.Generator.Limit); err != nil {
		return err
	}
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d outside 0..5", c.Logging.Verbosity)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q (valid: text, json)", c.Logging.Format)
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics port %d outside 0..65535", c.Metrics.Port)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Preset / config-file / CLI wiring
// -----------------------------------------------------------------------------

func applyPreset(cfg *Config, name string) error {
	preset, err := integration.GetPresetByName(name)
	if err != nil {
		return err
	}
	target := integration.PresetConfig{
		Name:          cfg.Generator.Preset,
		Strategy:      cfg.Generator.Strategy,
		BufferSize:    cfg.Generator.BufferSize,
		MaxDigits:     cfg.Generator.MaxDigits,
		EnableMetrics: cfg.Metrics.Enabled,
	}
	integration.ApplyPreset(&target, preset)

	cfg.Generator.Preset = target.Name
	cfg.Generator.Strategy = target.Strategy
	cfg.Generator.BufferSize = target.BufferSize
	cfg.Generator.MaxDigits = target.MaxDigits
	cfg.Metrics.Enabled = target.EnableMetrics
	return nil
}

// loadConfigFile decodes YAML over cfg; keys missing from the file keep their
// current values and unknown keys are an error.
func loadConfigFile(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet("strategy") {
		cfg.Generator.Strategy = ctx.GlobalString("strategy")
	}
	if ctx.GlobalIsSet("buffer") {
		cfg.Generator.BufferSize = ctx.GlobalInt("buffer")
	}
	if ctx.GlobalIsSet("digits") {
		cfg.Generator.MaxDigits = ctx.GlobalInt("digits")
	}
	if ctx.GlobalIsSet("limit") {
		cfg.Generator.Limit = ctx.GlobalUint64("limit")
	}
	if ctx.GlobalIsSet("output") {
		cfg.Generator.Output = ctx.GlobalString("output")
	}

	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Logging.Color = ctx.GlobalBool("log.color")
	}

	if ctx.GlobalIsSet("metrics") {
		cfg.Metrics.Enabled = ctx.GlobalBool("metrics")
	}
	if ctx.GlobalIsSet("metrics.addr") {
		cfg.Metrics.Addr = ctx.GlobalString("metrics.addr")
	}
	if ctx.GlobalIsSet("metrics.port") {
		cfg.Metrics.Port = ctx.GlobalInt("metrics.port")
	}

	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.GlobalString("sentry.dsn")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
