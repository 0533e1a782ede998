package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/schedule"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = ".aoc.yaml"

// Config holds the solver settings that may come from a YAML file.
type Config struct {
	Input        string `yaml:"input"`
	Workers      *int   `yaml:"workers"`       // nil means unset; 0 is kept and rejected later
	BaseDuration *int   `yaml:"base_duration"` // nil means unset; 0 is a valid base
	TieBreak     string `yaml:"tie_break"`
}

// Load reads a YAML config file. A missing file is only an error when
// required is true; otherwise the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills every unset field with the puzzle defaults.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = "input.txt"
	}
	if c.Workers == nil {
		workers := schedule.DefaultWorkers
		c.Workers = &workers
	}
	if c.BaseDuration == nil {
		base := schedule.DefaultBaseDuration
		c.BaseDuration = &base
	}
	if c.TieBreak == "" {
		c.TieBreak = string(schedule.GreatestFirst)
	}
}

// Schedule converts the settings into a scheduler config.
func (c *Config) Schedule() schedule.Config {
	cfg := schedule.Config{
		TieBreak: schedule.TieBreak(c.TieBreak),
	}
	if c.Workers != nil {
		cfg.Workers = *c.Workers
	}
	if c.BaseDuration != nil {
		cfg.BaseDuration = *c.BaseDuration
	}
	return cfg
}
