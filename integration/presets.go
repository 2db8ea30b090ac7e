package integration

import "fmt"

// Package integration provides tuning presets for the generator. A preset bundles
// the settings that trade memory for throughput (buffer size, strategy, widths)
// into a named profile so they can be picked with one flag.
//
// Usage:
//   cfg := integration.LitePreset()     // small buffer, low memory
//   cfg := integration.LargePreset()    // 1 MiB buffer, fewer syscalls
//   cfg := integration.BaselinePreset() // bufio + strconv, for comparison
//
// Each preset returns a PresetConfig that the launcher applies on top of its
// defaults and below the config file and command-line flags.

// PresetConfig captures the tunable parameters that vary across preset profiles.
type PresetConfig struct {
	Name          string // identifier used with --preset
	Strategy      string // generation strategy: batched, counter, buffered, naive
	BufferSize    int    // output buffer size in bytes
	MaxDigits     int    // widest digit block to emit
	EnableMetrics bool   // whether to serve Prometheus metrics
}

func DefaultPreset() PresetConfig {

	return PresetConfig{
		Name:          "default",
		Strategy:      "batched", // ripple-carry batches, the fastest strategy
		BufferSize:    64 * 1024, // 64 KiB: a pipe's default capacity on Linux
		MaxDigits:     16,
		EnableMetrics: false,
	}
}

// LitePreset keeps memory small. With a 4 KiB buffer every width still gets
// batches of whole periods, just fewer of them per write.
func LitePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "lite"
	cfg.BufferSize = 4 * 1024
	return cfg
}

// LargePreset uses a 1 MiB buffer: ten times more lines per batch and fewer
// writes, at the cost of cache locality on the replicate pass.
func LargePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "large"
	cfg.BufferSize = 1024 * 1024
	cfg.EnableMetrics = true
	return cfg
}

// BaselinePreset selects the plain buffered writer so results can be compared
// against the batched engine.
func BaselinePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "baseline"
	cfg.Strategy = "buffered"
	return cfg
}

// GetPresetByName looks up a preset by its identifier.
//
// Example:
//
//	preset, err := integration.GetPresetByName("lite")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "lite":
		return LitePreset(), nil
	case "large":
		return LargePreset(), nil
	case "baseline":
		return BaselinePreset(), nil
	case "default":
		return DefaultPreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("unknown preset: %q (valid: lite, large, baseline, default)", name)
	}
}

// ApplyPreset merges a preset into target. Non-zero preset fields override the
// target; the metrics switch is always applied.
func ApplyPreset(target *PresetConfig, preset PresetConfig) {
	if preset.Strategy != "" {
		target.Strategy = preset.Strategy
	}
	if preset.BufferSize > 0 {
		target.BufferSize = preset.BufferSize
	}
	if preset.MaxDigits > 0 {
		target.MaxDigits = preset.MaxDigits
	}
	target.EnableMetrics = preset.EnableMetrics
	if preset.Name != "" {
		target.Name = preset.Name
	}
}
