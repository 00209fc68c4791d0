// Package output renders solve results as text boards or JSON reports.
package output

import (
	"io"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
)

// Solution is one finished search, ready to be written.
type Solution struct {
	Label  string // optional, e.g. the starting hole in batch runs
	Start  *board.Board
	Target *board.Board
	Result solver.Result
}

// SolutionWriter is the interface for writing solutions to output.
// Different implementations handle different output formats.
type SolutionWriter interface {
	// WriteSolution writes a single solution to the output.
	WriteSolution(s Solution) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the output settings. When batch
// is true JSON output is collected into a single array.
func NewWriter(cfg config.OutputConfig, batch bool) SolutionWriter {
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}
	if cfg.Format == config.JSONFormat {
		if batch {
			return NewJSONWriter(w)
		}
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg.Color, cfg.Verbosity)
}
