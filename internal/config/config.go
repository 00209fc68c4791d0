// Package config provides run configuration for peg-solitaire.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// OutputFormat selects how solutions are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Row-indented boards
	JSONFormat                     // JSON report
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts "text" or "json" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// ColorMode controls styled terminal output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Styled when writing to a terminal
	ColorAlways                  // Always styled
	ColorNever                   // Plain text
)

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("color mode %q: %w", s, errors.ErrInvalidConfig)
}

// Size limits. Anything past MaxSize is far beyond what an exhaustive
// search can finish.
const (
	MinSize     = 1
	MaxSize     = 12
	DefaultSize = 5
)

// PuzzleConfig describes the starting board and the goal.
type PuzzleConfig struct {
	// Size is the side length of the triangle.
	Size int

	// Holes are the empty cells of the starting board.
	Holes []board.Position

	// Board is an explicit starting board in notation form. When set it
	// overrides Size and Holes.
	Board string

	// Target is where the last peg should end up.
	Target board.Position
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	Format    OutputFormat `validate:"min=0,max=1"`
	Color     ColorMode    `validate:"min=0,max=2"`
	Verbosity int          `validate:"min=0,max=2"` // 0=result only, 1=boards, 2=boards and statistics
	Writer    io.Writer    `validate:"-"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    // debug, info, warn, error
	Format string    `validate:"oneof=text json"`
	Writer io.Writer `validate:"-"`
}

// BatchConfig holds worker pool settings for batch runs.
type BatchConfig struct {
	Workers    int `validate:"min=1"`
	BufferSize int `validate:"min=1"`
}

// Config holds all program configuration.
type Config struct {
	Puzzle PuzzleConfig
	Output OutputConfig
	Log    LogConfig
	Batch  BatchConfig

	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string `validate:"omitempty,filepath"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Puzzle: PuzzleConfig{
			Size:   DefaultSize,
			Holes:  []board.Position{{Row: 0, Col: 0}},
			Target: board.Position{Row: 0, Col: 0},
		},
		Output: OutputConfig{
			Format:    TextFormat,
			Color:     ColorAuto,
			Verbosity: 1,
			Writer:    os.Stdout,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
			Writer: os.Stderr,
		},
		Batch: BatchConfig{
			Workers:    runtime.NumCPU(),
			BufferSize: 16,
		},
	}
}

// Validate checks the configuration for impossible combinations.
func (c *Config) Validate() error {
	if err := validateFields(c); err != nil {
		return err
	}

	size := c.Puzzle.Size
	if c.Puzzle.Board != "" {
		b, err := board.Parse(c.Puzzle.Board)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}
		size = b.Size()
		if size > MaxSize {
			return fmt.Errorf("board size %d exceeds %d: %w", size, MaxSize, errors.ErrInvalidConfig)
		}
	} else {
		if size < MinSize || size > MaxSize {
			return fmt.Errorf("size %d not in [%d, %d]: %w", size, MinSize, MaxSize, errors.ErrInvalidConfig)
		}
		shape := board.NewTriangle(size)
		for _, h := range c.Puzzle.Holes {
			if !shape.InBounds(h) {
				return fmt.Errorf("hole %v outside a size %d board: %w", h, size, errors.ErrInvalidConfig)
			}
		}
	}

	if !board.NewTriangle(size).InBounds(c.Puzzle.Target) {
		return fmt.Errorf("target %v outside a size %d board: %w", c.Puzzle.Target, size, errors.ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// StartBoard builds the starting board described by the puzzle settings.
func (c *Config) StartBoard() (*board.Board, error) {
	if c.Puzzle.Board != "" {
		return board.Parse(c.Puzzle.Board)
	}
	return board.Triangle(c.Puzzle.Size, c.Puzzle.Holes...), nil
}

// TargetBoard builds the single-peg target board.
func (c *Config) TargetBoard() (*board.Board, error) {
	size := c.Puzzle.Size
	if c.Puzzle.Board != "" {
		b, err := board.Parse(c.Puzzle.Board)
		if err != nil {
			return nil, err
		}
		size = b.Size()
	}
	return board.Target(size, c.Puzzle.Target)
}

// ParsePosition parses "row,col" (spaces and surrounding parentheses are
// allowed) into a Position. Bounds are not checked.
func ParsePosition(s string) (board.Position, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return board.Position{}, fmt.Errorf("position %q: want row,col: %w", s, errors.ErrInvalidConfig)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: bad row: %w", s, errors.ErrInvalidConfig)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: bad column: %w", s, errors.ErrInvalidConfig)
	}
	return board.Position{Row: row, Col: col}, nil
}
