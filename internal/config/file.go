package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// fileConfig mirrors the YAML layout. Pointer fields distinguish "absent"
// from zero so that a file only overrides what it sets.
type fileConfig struct {
	Puzzle struct {
		Size   *int     `yaml:"size"`
		Holes  []string `yaml:"holes"`
		Board  *string  `yaml:"board"`
		Target *string  `yaml:"target"`
	} `yaml:"puzzle"`
	Output struct {
		Format    *string `yaml:"format"`
		Color     *string `yaml:"color"`
		Verbosity *int    `yaml:"verbosity"`
	} `yaml:"output"`
	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
	Batch struct {
		Workers    *int `yaml:"workers"`
		BufferSize *int `yaml:"buffer_size"`
	} `yaml:"batch"`
	MetricsFile *string `yaml:"metrics_file"`
}

// LoadFile reads a YAML configuration file and applies it over cfg.
//
// Example:
//
//	puzzle:
//	  size: 5
//	  holes: ["0,0"]
//	  target: "0,0"
//	output:
//	  format: json
//	log:
//	  level: debug
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	return Load(data, cfg)
}

// Load applies YAML configuration data over cfg.
func Load(data []byte, cfg *Config) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %v: %w", err, errors.ErrInvalidConfig)
	}
	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Puzzle.Size != nil {
		cfg.Puzzle.Size = *fc.Puzzle.Size
	}
	if fc.Puzzle.Holes != nil {
		holes := make([]board.Position, 0, len(fc.Puzzle.Holes))
		for _, h := range fc.Puzzle.Holes {
			pos, err := ParsePosition(h)
			if err != nil {
				return err
			}
			holes = append(holes, pos)
		}
		cfg.Puzzle.Holes = holes
	}
	if fc.Puzzle.Board != nil {
		cfg.Puzzle.Board = *fc.Puzzle.Board
	}
	if fc.Puzzle.Target != nil {
		pos, err := ParsePosition(*fc.Puzzle.Target)
		if err != nil {
			return err
		}
		cfg.Puzzle.Target = pos
	}

	if fc.Output.Format != nil {
		f, err := ParseOutputFormat(*fc.Output.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = f
	}
	if fc.Output.Color != nil {
		m, err := ParseColorMode(*fc.Output.Color)
		if err != nil {
			return err
		}
		cfg.Output.Color = m
	}
	if fc.Output.Verbosity != nil {
		cfg.Output.Verbosity = *fc.Output.Verbosity
	}

	if fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
	if fc.Log.Format != nil {
		cfg.Log.Format = *fc.Log.Format
	}

	if fc.Batch.Workers != nil {
		cfg.Batch.Workers = *fc.Batch.Workers
	}
	if fc.Batch.BufferSize != nil {
		cfg.Batch.BufferSize = *fc.Batch.BufferSize
	}
	if fc.MetricsFile != nil {
		cfg.MetricsFile = *fc.MetricsFile
	}
	return nil
}
