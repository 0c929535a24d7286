// Package config loads the TOML configuration that seeds a run: cycle
// limits, the fixed memory layout, and trace/statistics/debugger options.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Execution holds the fixed memory layout and the run's cycle budget.
type Execution struct {
	MaxCycles    uint64 `toml:"max_cycles"`
	StackPointer uint32 `toml:"stack_pointer"`
	DataOrigin   uint32 `toml:"data_origin"`
	MemoryWords  uint32 `toml:"memory_words"`
}

// Trace holds execution-trace output settings.
type Trace struct {
	Enabled    bool   `toml:"enabled"`
	OutputFile string `toml:"output_file"`
}

// Statistics holds run-statistics output settings.
type Statistics struct {
	Enabled    bool   `toml:"enabled"`
	OutputFile string `toml:"output_file"`
	Format     string `toml:"format"` // text, json
}

// Debugger holds interactive-debugger settings.
type Debugger struct {
	HistorySize int `toml:"history_size"`
}

// Config is the full decoded configuration tree.
type Config struct {
	Execution  Execution  `toml:"execution"`
	Trace      Trace      `toml:"trace"`
	Statistics Statistics `toml:"statistics"`
	Debugger   Debugger   `toml:"debugger"`
}

// Default returns the built-in configuration, matching the fixed constants
// used when no config file is given.
func Default() Config {
	return Config{
		Execution: Execution{
			MaxCycles:    1_000_000,
			StackPointer: 256,
			DataOrigin:   512,
			MemoryWords:  1024,
		},
		Trace: Trace{
			Enabled:    false,
			OutputFile: "",
		},
		Statistics: Statistics{
			Enabled:    false,
			OutputFile: "",
			Format:     "text",
		},
		Debugger: Debugger{
			HistorySize: 1000,
		},
	}
}

// Load reads a TOML file at path and overlays it onto Default(). A missing
// file is not an error — callers that want defaults simply pass an empty
// path and get Default() back. A malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
