// Package errors provides sentinel errors and error types for peg-solitaire.
// Structured errors keep position or input context while still allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOutOfBounds indicates a position outside the triangular board.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalJump indicates a jump that violates the move rules.
	ErrIllegalJump = errors.New("illegal jump")

	// ErrNoSolution indicates the search exhausted every line without
	// reaching a single remaining peg.
	ErrNoSolution = errors.New("no solution")

	// ErrInvalidNotation indicates a malformed board notation string.
	ErrInvalidNotation = errors.New("invalid board notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with board context: the offending cell, the
// board size and, for path checks, the step at which the error occurred.
type PositionError struct {
	Err  error // The underlying error
	Row  int
	Col  int
	Size int // Board size (0 if unknown)
	Step int // 1-based step in a solution path (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Step > 0 {
		parts = append(parts, fmt.Sprintf("step %d", e.Step))
	}
	parts = append(parts, fmt.Sprintf("position (%d,%d)", e.Row, e.Col))
	if e.Size > 0 {
		parts = append(parts, fmt.Sprintf("board size %d", e.Size))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with location context.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being parsed
	Offset int    // 0-based byte offset into Input (-1 if unknown)
	Msg    string // What went wrong
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Offset >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
