package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/gobf/internal/cellio"
	"gopkg.in/yaml.v3"
)

// Config collects the VM settings that may be given by a yaml file.
type Config struct {
	TapeLimit   int         `yaml:"maxlen_tape"`
	CellSize    int         `yaml:"maxsize_cell"`
	LeftUnbound bool        `yaml:"is_left_unbound"`
	IO          cellio.Mode `yaml:"io"`
	LoopScan    LoopScan    `yaml:"loop_scan"`
	EOF         EOFMode     `yaml:"eof"`
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		TapeLimit: defaultTapeLimit,
		CellSize:  defaultCellSize,
	}
}

// LoadConfig reads a yaml config file; any settings it omits keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return ParseConfig(path, f)
}

// ParseConfig decodes and validates yaml config data from r. Unknown keys are
// rejected.
func ParseConfig(name string, r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (cfg Config) Validate() error {
	if cfg.TapeLimit < 0 {
		return fmt.Errorf("invalid maxlen_tape %v, must not be negative", cfg.TapeLimit)
	}
	if cfg.CellSize < 1 {
		return fmt.Errorf("invalid maxsize_cell %v, must be at least 1", cfg.CellSize)
	}
	return nil
}

func (cfg Config) options() VMOption {
	return VMOptions(
		withTapeLimit(cfg.TapeLimit),
		withCellSize(cfg.CellSize),
		withLeftUnbound(cfg.LeftUnbound),
		cfg.LoopScan,
		cfg.EOF,
	)
}
