package config

import (
	"io"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSize sets the triangle size.
func (b *ConfigBuilder) WithSize(size int) *ConfigBuilder {
	b.cfg.Puzzle.Size = size
	return b
}

// WithHoles sets the empty cells of the starting board.
func (b *ConfigBuilder) WithHoles(holes ...board.Position) *ConfigBuilder {
	b.cfg.Puzzle.Holes = append([]board.Position(nil), holes...)
	return b
}

// WithBoard sets an explicit starting board in notation form.
func (b *ConfigBuilder) WithBoard(notation string) *ConfigBuilder {
	b.cfg.Puzzle.Board = notation
	return b
}

// WithTarget sets the target position.
func (b *ConfigBuilder) WithTarget(pos board.Position) *ConfigBuilder {
	b.cfg.Puzzle.Target = pos
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColor sets the colour mode.
func (b *ConfigBuilder) WithColor(mode ColorMode) *ConfigBuilder {
	b.cfg.Output.Color = mode
	return b
}

// WithVerbosity sets the output verbosity.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Output.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithLog sets the log level, format and destination.
func (b *ConfigBuilder) WithLog(level, format string, w io.Writer) *ConfigBuilder {
	b.cfg.Log.Level = level
	b.cfg.Log.Format = format
	b.cfg.Log.Writer = w
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithMetricsFile sets the Prometheus textfile destination.
func (b *ConfigBuilder) WithMetricsFile(path string) *ConfigBuilder {
	b.cfg.MetricsFile = path
	return b
}
